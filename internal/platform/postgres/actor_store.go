package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"gorm.io/gorm"
)

var actorColumns = []string{"name", "nationality", "date_of_birth"}

// PostgresActorStore implements store.ActorStore.
type PostgresActorStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresActorStore creates a new PostgreSQL implementation of the ActorStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresActorStore(db *gorm.DB, logger *slog.Logger) *PostgresActorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresActorStore{
		db:     db,
		logger: logger.With(slog.String("component", "actor_store")),
	}
}

var _ store.ActorStore = (*PostgresActorStore)(nil)

// List implements store.ActorStore.List
func (s *PostgresActorStore) List(ctx context.Context, page domain.Page) ([]domain.Actor, int64, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&actorRow{}).Count(&total).Error; err != nil {
		return nil, 0, MapError(err)
	}

	var rows []actorRow
	if err := db.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&rows).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list actors",
			slog.Int("page", page.Number),
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	actors := make([]domain.Actor, 0, len(rows))
	for _, r := range rows {
		actors = append(actors, r.toDomain())
	}
	return actors, total, nil
}

// GetByID implements store.ActorStore.GetByID
func (s *PostgresActorStore) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	var row actorRow
	err := s.db.WithContext(ctx).
		Preload("Movies", orderByID("movies")).
		First(&row, id).Error
	if err != nil {
		return nil, mapNotFound(err, store.ErrActorNotFound)
	}
	if row.Movies == nil {
		row.Movies = []movieRow{}
	}
	a := row.toDomain()
	return &a, nil
}

// Create implements store.ActorStore.Create
func (s *PostgresActorStore) Create(ctx context.Context, actor *domain.Actor, movieIDs []int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	row := newActorRow(actor)
	row.ID = 0
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		movies, err := resolveRows[movieRow](tx, movieIDs)
		if err != nil {
			return err
		}
		row.Movies = movies
		return MapError(tx.Omit("Movies.*").Create(&row).Error)
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("actor not created",
			slog.String("error", err.Error()))
		return err
	}

	actor.ID = row.ID
	return nil
}

// Update implements store.ActorStore.Update
func (s *PostgresActorStore) Update(ctx context.Context, actor *domain.Actor, movieIDs []int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		var existing actorRow
		if err := tx.First(&existing, actor.ID).Error; err != nil {
			return mapNotFound(err, store.ErrActorNotFound)
		}

		var movies []movieRow
		if movieIDs != nil {
			var err error
			if movies, err = resolveRows[movieRow](tx, movieIDs); err != nil {
				return err
			}
		}

		updated := newActorRow(actor)
		if err := tx.Model(&existing).Select(actorColumns).Updates(&updated).Error; err != nil {
			return MapError(err)
		}

		if movieIDs == nil {
			return nil
		}
		return replaceAssociation(tx, &existing, "Movies", movies)
	})
}

// Delete implements store.ActorStore.Delete
func (s *PostgresActorStore) Delete(ctx context.Context, id int64) error {
	return checkRowsAffected(s.db.WithContext(ctx).Delete(&actorRow{}, id), store.ErrActorNotFound)
}
