package domain

import "strings"

// Bounds for movie attributes.
const (
	MinMovieYear = 1888
	MaxRating    = 10.0
)

// Movie is a production in the casting agency's catalogue.
// Actors is only populated when the movie is loaded with its cast.
type Movie struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Genre    string  `json:"genre"`
	Language string  `json:"language"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Actors   []Actor `json:"actors,omitempty"`
}

// Validate checks if the Movie has valid data. A zero Year or Rating means
// the value is unknown.
func (m *Movie) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyContent)
	}
	if m.Year != 0 && m.Year < MinMovieYear {
		return NewValidationError("year", "is out of range", nil)
	}
	if m.Rating < 0 || m.Rating > MaxRating {
		return NewValidationError("rating", "must be between 0 and 10", nil)
	}
	return nil
}
