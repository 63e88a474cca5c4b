package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Actor is a performer who can be cast in any number of movies.
// Movies is only populated when the actor is loaded with their filmography.
type Actor struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Nationality string     `json:"nationality"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Movies      []Movie    `json:"movies,omitempty"`
}

// Validate checks if the Actor has valid data.
func (a *Actor) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyContent)
	}
	if a.DateOfBirth != nil && a.DateOfBirth.After(time.Now()) {
		return NewValidationError("date_of_birth", "cannot be in the future", nil)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, NewValidationError("date_of_birth", "must use the YYYY-MM-DD format", nil)
	}
	return t, nil
}
