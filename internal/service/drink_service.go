package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
)

// DrinkUpdate carries a partial drink update. Nil fields keep their value.
type DrinkUpdate struct {
	Title  *string
	Recipe []domain.RecipePart
}

// DrinkService provides the coffee shop menu operations.
type DrinkService interface {
	// List returns every drink, or ErrNoResults when the menu is empty.
	List(ctx context.Context) ([]domain.Drink, error)

	// Create validates and stores a new drink.
	Create(ctx context.Context, title string, recipe []domain.RecipePart) (*domain.Drink, error)

	// Update applies a partial update to an existing drink.
	Update(ctx context.Context, id int64, update DrinkUpdate) (*domain.Drink, error)

	// Delete removes a drink.
	Delete(ctx context.Context, id int64) error
}

type drinkServiceImpl struct {
	drinks store.DrinkStore
	logger *slog.Logger
}

// NewDrinkService creates a new DrinkService.
// It returns an error if the store is nil.
func NewDrinkService(drinks store.DrinkStore, logger *slog.Logger) (DrinkService, error) {
	if drinks == nil {
		return nil, domain.NewValidationError("drinks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &drinkServiceImpl{
		drinks: drinks,
		logger: logger.With(slog.String("component", "drink_service")),
	}, nil
}

func (s *drinkServiceImpl) List(ctx context.Context) ([]domain.Drink, error) {
	drinks, err := s.drinks.List(ctx)
	if err != nil {
		return nil, wrapStoreError("list_drinks", err)
	}
	if len(drinks) == 0 {
		return nil, ErrNoResults
	}
	return drinks, nil
}

func (s *drinkServiceImpl) Create(
	ctx context.Context,
	title string,
	recipe []domain.RecipePart,
) (*domain.Drink, error) {
	drink, err := domain.NewDrink(title, recipe)
	if err != nil {
		return nil, err
	}
	if err := s.drinks.Create(ctx, drink); err != nil {
		return nil, wrapStoreError("create_drink", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("drink created",
		slog.Int64("drink_id", drink.ID),
		slog.String("title", drink.Title))
	return drink, nil
}

func (s *drinkServiceImpl) Update(ctx context.Context, id int64, update DrinkUpdate) (*domain.Drink, error) {
	drink, err := s.drinks.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_drink", err)
	}

	if update.Title != nil {
		drink.Title = strings.TrimSpace(*update.Title)
	}
	if update.Recipe != nil {
		drink.Recipe = update.Recipe
	}
	if err := drink.Validate(); err != nil {
		return nil, err
	}

	if err := s.drinks.Update(ctx, drink); err != nil {
		return nil, wrapStoreError("update_drink", err)
	}
	return drink, nil
}

func (s *drinkServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.drinks.Delete(ctx, id); err != nil {
		return wrapStoreError("delete_drink", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("drink deleted", slog.Int64("drink_id", id))
	return nil
}
