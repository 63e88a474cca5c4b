package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"gorm.io/gorm"
)

// movieColumns are the attribute columns overwritten by Update.
var movieColumns = []string{"name", "genre", "language", "year", "rating"}

// PostgresMovieStore implements store.MovieStore.
type PostgresMovieStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresMovieStore creates a new PostgreSQL implementation of the MovieStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMovieStore(db *gorm.DB, logger *slog.Logger) *PostgresMovieStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMovieStore{
		db:     db,
		logger: logger.With(slog.String("component", "movie_store")),
	}
}

var _ store.MovieStore = (*PostgresMovieStore)(nil)

// List implements store.MovieStore.List
func (s *PostgresMovieStore) List(ctx context.Context, page domain.Page) ([]domain.Movie, int64, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&movieRow{}).Count(&total).Error; err != nil {
		return nil, 0, MapError(err)
	}

	var rows []movieRow
	if err := db.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&rows).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list movies",
			slog.Int("page", page.Number),
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	movies := make([]domain.Movie, 0, len(rows))
	for _, r := range rows {
		movies = append(movies, r.toDomain())
	}
	return movies, total, nil
}

// GetByID implements store.MovieStore.GetByID
func (s *PostgresMovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	var row movieRow
	err := s.db.WithContext(ctx).
		Preload("Actors", orderByID("actors")).
		First(&row, id).Error
	if err != nil {
		return nil, mapNotFound(err, store.ErrMovieNotFound)
	}
	if row.Actors == nil {
		row.Actors = []actorRow{}
	}
	m := row.toDomain()
	return &m, nil
}

// Create implements store.MovieStore.Create
func (s *PostgresMovieStore) Create(ctx context.Context, movie *domain.Movie, actorIDs []int64) error {
	if err := movie.Validate(); err != nil {
		return err
	}

	row := newMovieRow(movie)
	row.ID = 0
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		actors, err := resolveRows[actorRow](tx, actorIDs)
		if err != nil {
			return err
		}
		row.Actors = actors
		return MapError(tx.Omit("Actors.*").Create(&row).Error)
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("movie not created",
			slog.String("error", err.Error()))
		return err
	}

	movie.ID = row.ID
	return nil
}

// Update implements store.MovieStore.Update
func (s *PostgresMovieStore) Update(ctx context.Context, movie *domain.Movie, actorIDs []int64) error {
	if err := movie.Validate(); err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		var existing movieRow
		if err := tx.First(&existing, movie.ID).Error; err != nil {
			return mapNotFound(err, store.ErrMovieNotFound)
		}

		var actors []actorRow
		if actorIDs != nil {
			var err error
			if actors, err = resolveRows[actorRow](tx, actorIDs); err != nil {
				return err
			}
		}

		updated := newMovieRow(movie)
		if err := tx.Model(&existing).Select(movieColumns).Updates(&updated).Error; err != nil {
			return MapError(err)
		}

		if actorIDs == nil {
			return nil
		}
		return replaceAssociation(tx, &existing, "Actors", actors)
	})
}

// Delete implements store.MovieStore.Delete
// Join rows are removed by the ON DELETE CASCADE constraint.
func (s *PostgresMovieStore) Delete(ctx context.Context, id int64) error {
	return checkRowsAffected(s.db.WithContext(ctx).Delete(&movieRow{}, id), store.ErrMovieNotFound)
}

// resolveRows loads the rows with the given ids inside tx and fails with
// store.ErrInvalidRelation unless every id exists.
func resolveRows[T any](tx *gorm.DB, ids []int64) ([]T, error) {
	rows := []T{}
	if len(ids) == 0 {
		return rows, nil
	}
	if err := tx.Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, MapError(err)
	}
	if len(rows) != len(ids) {
		return nil, store.ErrInvalidRelation
	}
	return rows, nil
}

// replaceAssociation swaps the join rows of owner for targets without
// touching the target rows themselves.
func replaceAssociation[T any](tx *gorm.DB, owner interface{}, name string, targets []T) error {
	assoc := tx.Model(owner).Omit(name + ".*").Association(name)
	if len(targets) == 0 {
		return MapError(assoc.Clear())
	}
	return MapError(assoc.Replace(targets))
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}
