package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/phrazzld/crudsuite/internal/domain"
)

// Trivia

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Question   string `json:"question"   validate:"required"`
	Answer     string `json:"answer"     validate:"required"`
	Category   int64  `json:"category"   validate:"required,gt=0"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
}

// SearchQuestionsRequest is the body of POST /questions/search. An absent
// term matches every question.
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int64              `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category" validate:"required"`
}

// QuizCategoryRequest names the quiz category. The quiz client sends the id
// either as a number or as a numeric string.
type QuizCategoryRequest struct {
	ID   flexibleID `json:"id"`
	Type string     `json:"type"`
}

// flexibleID decodes a JSON number or numeric string.
type flexibleID int64

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = flexibleID(n)
	return nil
}

// QuestionListResponse is returned by GET /questions.
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	Categories      []domain.Category `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

// QuestionsResponse is returned by the category and search endpoints.
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
}

// CategoriesResponse is returned by GET /categories.
type CategoriesResponse struct {
	Success         bool             `json:"success"`
	Categories      map[int64]string `json:"categories"`
	TotalCategories int              `json:"total_categories"`
}

// DeleteQuestionResponse is returned by DELETE /questions/{id}.
type DeleteQuestionResponse struct {
	Success  bool            `json:"success"`
	Deleted  int64           `json:"deleted"`
	Question domain.Question `json:"question"`
}

// CreatedResponse is returned by POST /questions.
type CreatedResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

// QuizResponse is returned by POST /quizzes. Question is null once every
// question of the category was asked.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

func categoryMap(categories []domain.Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// Coffee

// DrinkRequest is the body of POST /drinks and PATCH /drinks/{id}.
type DrinkRequest struct {
	Title  *string     `json:"title"`
	Recipe recipeInput `json:"recipe"`
}

// recipeInput accepts a single recipe part object or a list of them.
type recipeInput []domain.RecipePart

func (ri *recipeInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*ri = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var part domain.RecipePart
		if err := json.Unmarshal(trimmed, &part); err != nil {
			return err
		}
		*ri = recipeInput{part}
		return nil
	}
	var parts []domain.RecipePart
	if err := json.Unmarshal(trimmed, &parts); err != nil {
		return err
	}
	*ri = parts
	return nil
}

// RecipePartShort is a recipe part without its ingredient name.
type RecipePartShort struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkShort is the public drink representation.
type DrinkShort struct {
	ID     int64             `json:"id"`
	Title  string            `json:"title"`
	Recipe []RecipePartShort `json:"recipe"`
}

// DrinksShortResponse is returned by GET /drinks.
type DrinksShortResponse struct {
	Success bool         `json:"success"`
	Drinks  []DrinkShort `json:"drinks"`
}

// DrinksLongResponse is returned by the detail and mutation endpoints.
type DrinksLongResponse struct {
	Success bool           `json:"success"`
	Drinks  []domain.Drink `json:"drinks"`
}

// DeleteDrinkResponse is returned by DELETE /drinks/{id}.
type DeleteDrinkResponse struct {
	Success bool  `json:"success"`
	Delete  int64 `json:"delete"`
}

func drinkToShort(d domain.Drink) DrinkShort {
	recipe := make([]RecipePartShort, 0, len(d.Recipe))
	for _, part := range d.Recipe {
		recipe = append(recipe, RecipePartShort{Color: part.Color, Parts: part.Parts})
	}
	return DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// Casting

// MovieRequest is the body of POST /movies and PATCH /movies/{id}. Actors
// lists actor ids; when present it replaces the cast.
type MovieRequest struct {
	Name     *string  `json:"name"`
	Genre    *string  `json:"genre"`
	Language *string  `json:"language"`
	Year     *int     `json:"year"        validate:"omitempty,gte=1888,lte=9999"`
	Rating   *float64 `json:"imdb_rating" validate:"omitempty,gte=0,lte=10"`
	Actors   []int64  `json:"actors"      validate:"omitempty,dive,gt=0"`
}

// ActorRequest is the body of POST /actors and PATCH /actors/{id}. Movies
// lists movie ids; when present it replaces the filmography.
type ActorRequest struct {
	Name        *string `json:"name"`
	Nationality *string `json:"nationality"`
	DateOfBirth *string `json:"date_of_birth"`
	Movies      []int64 `json:"movies" validate:"omitempty,dive,gt=0"`
}

// MovieShort is the movie summary used in lists.
type MovieShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// MovieDetail is the full movie representation.
type MovieDetail struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Genre      string       `json:"genre"`
	Language   string       `json:"language"`
	Year       int          `json:"year"`
	Rating     float64      `json:"imdb_rating"`
	NoOfActors int          `json:"no_of_actors"`
	Actors     []ActorShort `json:"actors"`
}

// ActorShort is the actor summary used in lists.
type ActorShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActorDetail is the full actor representation.
type ActorDetail struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Nationality string       `json:"nationality"`
	DateOfBirth *string      `json:"date_of_birth"`
	NoOfMovies  int          `json:"no_of_movies"`
	Movies      []MovieShort `json:"movies"`
}

// MoviesResponse is returned by GET /movies.
type MoviesResponse struct {
	Success     bool         `json:"success"`
	Movies      []MovieShort `json:"movies"`
	TotalMovies int64        `json:"total_movies"`
}

// MovieResponse is returned by GET /movies/{id}.
type MovieResponse struct {
	Success bool        `json:"success"`
	Movie   MovieDetail `json:"movie"`
}

// ActorsResponse is returned by GET /actors.
type ActorsResponse struct {
	Success     bool         `json:"success"`
	Actors      []ActorShort `json:"actors"`
	TotalActors int64        `json:"total_actors"`
}

// ActorResponse is returned by GET /actors/{id}.
type ActorResponse struct {
	Success bool        `json:"success"`
	Actor   ActorDetail `json:"actor"`
}

func movieToShort(m domain.Movie) MovieShort {
	return MovieShort{ID: m.ID, Name: m.Name, Year: m.Year}
}

func movieToDetail(m *domain.Movie) MovieDetail {
	actors := make([]ActorShort, 0, len(m.Actors))
	for _, a := range m.Actors {
		actors = append(actors, actorToShort(a))
	}
	return MovieDetail{
		ID:         m.ID,
		Name:       m.Name,
		Genre:      m.Genre,
		Language:   m.Language,
		Year:       m.Year,
		Rating:     m.Rating,
		NoOfActors: len(actors),
		Actors:     actors,
	}
}

func actorToShort(a domain.Actor) ActorShort {
	return ActorShort{ID: a.ID, Name: a.Name}
}

func actorToDetail(a *domain.Actor) ActorDetail {
	movies := make([]MovieShort, 0, len(a.Movies))
	for _, m := range a.Movies {
		movies = append(movies, movieToShort(m))
	}
	detail := ActorDetail{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		NoOfMovies:  len(movies),
		Movies:      movies,
	}
	if a.DateOfBirth != nil {
		dob := a.DateOfBirth.Format(domain.DateLayout)
		detail.DateOfBirth = &dob
	}
	return detail
}
