package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"gorm.io/gorm"
)

// PostgresDrinkStore implements store.DrinkStore.
type PostgresDrinkStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresDrinkStore creates a new PostgreSQL implementation of the DrinkStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresDrinkStore(db *gorm.DB, logger *slog.Logger) *PostgresDrinkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDrinkStore{
		db:     db,
		logger: logger.With(slog.String("component", "drink_store")),
	}
}

var _ store.DrinkStore = (*PostgresDrinkStore)(nil)

// List implements store.DrinkStore.List
func (s *PostgresDrinkStore) List(ctx context.Context) ([]domain.Drink, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []drinkRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		log.Error("failed to list drinks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	drinks := make([]domain.Drink, 0, len(rows))
	for _, r := range rows {
		d, err := r.toDomain()
		if err != nil {
			log.Error("stored recipe is unreadable", slog.String("error", err.Error()))
			return nil, err
		}
		drinks = append(drinks, d)
	}
	return drinks, nil
}

// GetByID implements store.DrinkStore.GetByID
func (s *PostgresDrinkStore) GetByID(ctx context.Context, id int64) (*domain.Drink, error) {
	var row drinkRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapNotFound(err, store.ErrDrinkNotFound)
	}
	d, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create implements store.DrinkStore.Create
func (s *PostgresDrinkStore) Create(ctx context.Context, drink *domain.Drink) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := drink.Validate(); err != nil {
		return err
	}
	row, err := newDrinkRow(drink)
	if err != nil {
		return err
	}
	row.ID = 0

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if IsUniqueViolation(err) {
			return store.ErrTitleExists
		}
		log.Error("failed to create drink", slog.String("error", err.Error()))
		return MapError(err)
	}

	drink.ID = row.ID
	log.Debug("drink created", slog.Int64("drink_id", row.ID))
	return nil
}

// Update implements store.DrinkStore.Update
func (s *PostgresDrinkStore) Update(ctx context.Context, drink *domain.Drink) error {
	if err := drink.Validate(); err != nil {
		return err
	}
	row, err := newDrinkRow(drink)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Model(&drinkRow{ID: drink.ID}).
		Updates(map[string]interface{}{"title": row.Title, "recipe": row.Recipe})
	if res.Error != nil && IsUniqueViolation(res.Error) {
		return store.ErrTitleExists
	}
	return checkRowsAffected(res, store.ErrDrinkNotFound)
}

// Delete implements store.DrinkStore.Delete
func (s *PostgresDrinkStore) Delete(ctx context.Context, id int64) error {
	return checkRowsAffected(s.db.WithContext(ctx).Delete(&drinkRow{}, id), store.ErrDrinkNotFound)
}
