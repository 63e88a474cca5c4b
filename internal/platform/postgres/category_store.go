package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"gorm.io/gorm"
)

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the CategoryStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db *gorm.DB, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// List implements store.CategoryStore.List
func (s *PostgresCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []categoryRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var row categoryRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapNotFound(err, store.ErrCategoryNotFound)
	}
	c := row.toDomain()
	return &c, nil
}
