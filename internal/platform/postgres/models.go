package postgres

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
)

// Row types map the schema created by the embedded migrations. They stay
// private to the package; stores convert them to domain values at the edge.

type categoryRow struct {
	ID   int64 `gorm:"primaryKey"`
	Type string
}

func (categoryRow) TableName() string { return "categories" }

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Type: r.Type}
}

type questionRow struct {
	ID         int64 `gorm:"primaryKey"`
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

func (questionRow) TableName() string { return "questions" }

func newQuestionRow(q *domain.Question) questionRow {
	return questionRow{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func (r questionRow) toDomain() domain.Question {
	return domain.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

// drinkRow keeps the recipe as a JSON document in a text column.
type drinkRow struct {
	ID     int64 `gorm:"primaryKey"`
	Title  string
	Recipe string
}

func (drinkRow) TableName() string { return "drinks" }

func newDrinkRow(d *domain.Drink) (drinkRow, error) {
	recipe, err := json.Marshal(d.Recipe)
	if err != nil {
		return drinkRow{}, fmt.Errorf("failed to encode recipe: %w", err)
	}
	return drinkRow{ID: d.ID, Title: d.Title, Recipe: string(recipe)}, nil
}

func (r drinkRow) toDomain() (domain.Drink, error) {
	var recipe []domain.RecipePart
	if err := json.NewDecoder(strings.NewReader(r.Recipe)).Decode(&recipe); err != nil {
		return domain.Drink{}, fmt.Errorf("failed to decode recipe of drink %d: %w", r.ID, err)
	}
	return domain.Drink{ID: r.ID, Title: r.Title, Recipe: recipe}, nil
}

type movieRow struct {
	ID       int64 `gorm:"primaryKey"`
	Name     string
	Genre    string
	Language string
	Year     int
	Rating   float64
	Actors   []actorRow `gorm:"many2many:movies_actors;joinForeignKey:MovieID;joinReferences:ActorID"`
}

func (movieRow) TableName() string { return "movies" }

func newMovieRow(m *domain.Movie) movieRow {
	return movieRow{
		ID:       m.ID,
		Name:     m.Name,
		Genre:    m.Genre,
		Language: m.Language,
		Year:     m.Year,
		Rating:   m.Rating,
	}
}

func (r movieRow) toDomain() domain.Movie {
	m := domain.Movie{
		ID:       r.ID,
		Name:     r.Name,
		Genre:    r.Genre,
		Language: r.Language,
		Year:     r.Year,
		Rating:   r.Rating,
	}
	if r.Actors != nil {
		m.Actors = make([]domain.Actor, 0, len(r.Actors))
		for _, a := range r.Actors {
			m.Actors = append(m.Actors, a.toDomain())
		}
	}
	return m
}

type actorRow struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Nationality string
	DateOfBirth *time.Time `gorm:"type:date"`
	Movies      []movieRow `gorm:"many2many:movies_actors;joinForeignKey:ActorID;joinReferences:MovieID"`
}

func (actorRow) TableName() string { return "actors" }

func newActorRow(a *domain.Actor) actorRow {
	return actorRow{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		DateOfBirth: a.DateOfBirth,
	}
}

func (r actorRow) toDomain() domain.Actor {
	a := domain.Actor{
		ID:          r.ID,
		Name:        r.Name,
		Nationality: r.Nationality,
		DateOfBirth: r.DateOfBirth,
	}
	if r.Movies != nil {
		a.Movies = make([]domain.Movie, 0, len(r.Movies))
		for _, m := range r.Movies {
			a.Movies = append(a.Movies, m.toDomain())
		}
	}
	return a
}

// escapeLike escapes the LIKE metacharacters of a user-supplied search term.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
