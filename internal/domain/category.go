package domain

import "strings"

// Category groups trivia questions. Categories are read-only through the API.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// DefaultCategories returns the categories every trivia database starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Type) == "" {
		return NewValidationError("type", "is required", ErrEmptyContent)
	}
	return nil
}
