package store

import (
	"context"

	"github.com/phrazzld/crudsuite/internal/domain"
)

// DrinkStore defines the interface for drink persistence.
type DrinkStore interface {
	// List returns every drink ordered by id.
	List(ctx context.Context) ([]domain.Drink, error)

	// GetByID retrieves a drink by its id.
	// Returns ErrDrinkNotFound if the drink does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Drink, error)

	// Create inserts the drink and assigns its ID.
	// Returns ErrTitleExists if another drink has the same title.
	Create(ctx context.Context, drink *domain.Drink) error

	// Update overwrites the title and recipe of an existing drink.
	// Returns ErrDrinkNotFound if the drink does not exist and
	// ErrTitleExists if the new title is taken.
	Update(ctx context.Context, drink *domain.Drink) error

	// Delete removes a drink.
	// Returns ErrDrinkNotFound if the drink does not exist.
	Delete(ctx context.Context, id int64) error
}
