package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
)

// MovieInput carries the fields of a movie create or update. Nil fields are
// absent from the request; a nil ActorIDs keeps the current cast.
type MovieInput struct {
	Name     *string
	Genre    *string
	Language *string
	Year     *int
	Rating   *float64
	ActorIDs []int64
}

// ActorInput carries the fields of an actor create or update. DateOfBirth
// uses the YYYY-MM-DD layout; an empty string clears it.
type ActorInput struct {
	Name        *string
	Nationality *string
	DateOfBirth *string
	MovieIDs    []int64
}

// CastingService provides the casting agency operations.
type CastingService interface {
	ListMovies(ctx context.Context, page domain.Page) ([]domain.Movie, int64, error)
	GetMovie(ctx context.Context, id int64) (*domain.Movie, error)
	CreateMovie(ctx context.Context, input MovieInput) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, id int64, input MovieInput) (*domain.Movie, error)
	// DeleteMovie removes the movie and returns it as it was.
	DeleteMovie(ctx context.Context, id int64) (*domain.Movie, error)

	ListActors(ctx context.Context, page domain.Page) ([]domain.Actor, int64, error)
	GetActor(ctx context.Context, id int64) (*domain.Actor, error)
	CreateActor(ctx context.Context, input ActorInput) (*domain.Actor, error)
	UpdateActor(ctx context.Context, id int64, input ActorInput) (*domain.Actor, error)
	// DeleteActor removes the actor and returns them as they were.
	DeleteActor(ctx context.Context, id int64) (*domain.Actor, error)
}

type castingServiceImpl struct {
	movies store.MovieStore
	actors store.ActorStore
	logger *slog.Logger
}

// NewCastingService creates a new CastingService.
// It returns an error if any of the required dependencies are nil.
func NewCastingService(movies store.MovieStore, actors store.ActorStore, logger *slog.Logger) (CastingService, error) {
	if movies == nil {
		return nil, domain.NewValidationError("movies", "cannot be nil", domain.ErrValidation)
	}
	if actors == nil {
		return nil, domain.NewValidationError("actors", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &castingServiceImpl{
		movies: movies,
		actors: actors,
		logger: logger.With(slog.String("component", "casting_service")),
	}, nil
}

func (s *castingServiceImpl) ListMovies(ctx context.Context, page domain.Page) ([]domain.Movie, int64, error) {
	movies, total, err := s.movies.List(ctx, page)
	if err != nil {
		return nil, 0, wrapStoreError("list_movies", err)
	}
	return movies, total, nil
}

func (s *castingServiceImpl) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_movie", err)
	}
	return movie, nil
}

func (s *castingServiceImpl) CreateMovie(ctx context.Context, input MovieInput) (*domain.Movie, error) {
	if input.Name == nil {
		return nil, domain.NewValidationError("name", "is required", domain.ErrEmptyContent)
	}
	movie := &domain.Movie{}
	input.apply(movie)
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	if err := s.movies.Create(ctx, movie, dedupeIDs(input.ActorIDs)); err != nil {
		return nil, wrapStoreError("create_movie", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("movie created",
		slog.Int64("movie_id", movie.ID),
		slog.Int("actors", len(input.ActorIDs)))
	return movie, nil
}

func (s *castingServiceImpl) UpdateMovie(ctx context.Context, id int64, input MovieInput) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_movie", err)
	}
	input.apply(movie)
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	if err := s.movies.Update(ctx, movie, dedupeIDs(input.ActorIDs)); err != nil {
		return nil, wrapStoreError("update_movie", err)
	}
	return movie, nil
}

func (s *castingServiceImpl) DeleteMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_movie", err)
	}
	if err := s.movies.Delete(ctx, id); err != nil {
		return nil, wrapStoreError("delete_movie", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("movie deleted", slog.Int64("movie_id", id))
	return movie, nil
}

func (s *castingServiceImpl) ListActors(ctx context.Context, page domain.Page) ([]domain.Actor, int64, error) {
	actors, total, err := s.actors.List(ctx, page)
	if err != nil {
		return nil, 0, wrapStoreError("list_actors", err)
	}
	return actors, total, nil
}

func (s *castingServiceImpl) GetActor(ctx context.Context, id int64) (*domain.Actor, error) {
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_actor", err)
	}
	return actor, nil
}

func (s *castingServiceImpl) CreateActor(ctx context.Context, input ActorInput) (*domain.Actor, error) {
	if input.Name == nil {
		return nil, domain.NewValidationError("name", "is required", domain.ErrEmptyContent)
	}
	actor := &domain.Actor{}
	if err := input.apply(actor); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	if err := s.actors.Create(ctx, actor, dedupeIDs(input.MovieIDs)); err != nil {
		return nil, wrapStoreError("create_actor", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("actor created",
		slog.Int64("actor_id", actor.ID),
		slog.Int("movies", len(input.MovieIDs)))
	return actor, nil
}

func (s *castingServiceImpl) UpdateActor(ctx context.Context, id int64, input ActorInput) (*domain.Actor, error) {
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_actor", err)
	}
	if err := input.apply(actor); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	if err := s.actors.Update(ctx, actor, dedupeIDs(input.MovieIDs)); err != nil {
		return nil, wrapStoreError("update_actor", err)
	}
	return actor, nil
}

func (s *castingServiceImpl) DeleteActor(ctx context.Context, id int64) (*domain.Actor, error) {
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_actor", err)
	}
	if err := s.actors.Delete(ctx, id); err != nil {
		return nil, wrapStoreError("delete_actor", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("actor deleted", slog.Int64("actor_id", id))
	return actor, nil
}

func (in MovieInput) apply(m *domain.Movie) {
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Genre != nil {
		m.Genre = *in.Genre
	}
	if in.Language != nil {
		m.Language = *in.Language
	}
	if in.Year != nil {
		m.Year = *in.Year
	}
	if in.Rating != nil {
		m.Rating = *in.Rating
	}
}

func (in ActorInput) apply(a *domain.Actor) error {
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Nationality != nil {
		a.Nationality = *in.Nationality
	}
	if in.DateOfBirth != nil {
		if strings.TrimSpace(*in.DateOfBirth) == "" {
			a.DateOfBirth = nil
			return nil
		}
		dob, err := domain.ParseDate(*in.DateOfBirth)
		if err != nil {
			return err
		}
		a.DateOfBirth = timePtr(dob)
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
