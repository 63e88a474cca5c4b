package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxDrinkTitleLength matches the width of the drinks.title column.
const MaxDrinkTitleLength = 80

// ErrEmptyRecipe is returned when a drink has no recipe parts.
var ErrEmptyRecipe = errors.New("recipe must contain at least one ingredient")

// RecipePart is one ingredient of a drink, drawn as a colored band whose
// height is proportional to Parts.
type RecipePart struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Parts int    `json:"parts"`
}

// Drink is a coffee-shop menu item. Titles are unique.
type Drink struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Recipe []RecipePart `json:"recipe"`
}

// NewDrink creates a Drink and validates it.
func NewDrink(title string, recipe []RecipePart) (*Drink, error) {
	d := &Drink{
		Title:  strings.TrimSpace(title),
		Recipe: recipe,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks if the Drink has valid data.
func (d *Drink) Validate() error {
	if d.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyContent)
	}
	if utf8.RuneCountInString(d.Title) > MaxDrinkTitleLength {
		return NewValidationError("title", "must be at most 80 characters", nil)
	}
	if len(d.Recipe) == 0 {
		return NewValidationError("recipe", "is required", ErrEmptyRecipe)
	}
	for _, part := range d.Recipe {
		if strings.TrimSpace(part.Name) == "" {
			return NewValidationError("recipe.name", "is required", ErrEmptyContent)
		}
		if strings.TrimSpace(part.Color) == "" {
			return NewValidationError("recipe.color", "is required", ErrEmptyContent)
		}
		if part.Parts < 1 {
			return NewValidationError("recipe.parts", "must be at least 1", nil)
		}
	}
	return nil
}
