package store

import (
	"context"

	"github.com/phrazzld/crudsuite/internal/domain"
)

// MovieStore defines the interface for movie persistence, including the
// movie side of the movies_actors join table.
//
// Relationship ids passed to Create and Update must be de-duplicated by the
// caller. Implementations resolve them atomically with the write: when any id
// does not exist they return ErrInvalidRelation and leave the store untouched.
type MovieStore interface {
	// List returns the requested page of movies (without cast) and the total
	// number of movies. The zero Page returns every movie.
	List(ctx context.Context, page domain.Page) ([]domain.Movie, int64, error)

	// GetByID retrieves a movie with its actors.
	// Returns ErrMovieNotFound if the movie does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)

	// Create inserts the movie, assigns its ID and links the given actors.
	Create(ctx context.Context, movie *domain.Movie, actorIDs []int64) error

	// Update overwrites the movie's attributes. A nil actorIDs keeps the
	// current cast; a non-nil slice replaces it.
	// Returns ErrMovieNotFound if the movie does not exist.
	Update(ctx context.Context, movie *domain.Movie, actorIDs []int64) error

	// Delete removes a movie and its join rows.
	// Returns ErrMovieNotFound if the movie does not exist.
	Delete(ctx context.Context, id int64) error
}

// ActorStore defines the interface for actor persistence, including the
// actor side of the movies_actors join table. Relationship ids follow the
// same rules as MovieStore.
type ActorStore interface {
	// List returns the requested page of actors (without movies) and the
	// total number of actors. The zero Page returns every actor.
	List(ctx context.Context, page domain.Page) ([]domain.Actor, int64, error)

	// GetByID retrieves an actor with their movies.
	// Returns ErrActorNotFound if the actor does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)

	// Create inserts the actor, assigns its ID and links the given movies.
	Create(ctx context.Context, actor *domain.Actor, movieIDs []int64) error

	// Update overwrites the actor's attributes. A nil movieIDs keeps the
	// current movies; a non-nil slice replaces them.
	// Returns ErrActorNotFound if the actor does not exist.
	Update(ctx context.Context, actor *domain.Actor, movieIDs []int64) error

	// Delete removes an actor and their join rows.
	// Returns ErrActorNotFound if the actor does not exist.
	Delete(ctx context.Context, id int64) error
}
