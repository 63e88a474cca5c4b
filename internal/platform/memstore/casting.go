package memstore

import (
	"context"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/store"
)

// MovieStore implements store.MovieStore.
type MovieStore struct{ db *DB }

// NewMovieStore returns a MovieStore backed by db.
func NewMovieStore(db *DB) *MovieStore { return &MovieStore{db: db} }

var _ store.MovieStore = (*MovieStore)(nil)

func (s *MovieStore) List(ctx context.Context, page domain.Page) ([]domain.Movie, int64, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	all := sortedValues(s.db.movies, movieID)
	return domain.Slice(all, page), int64(len(all)), nil
}

func (s *MovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	m, ok := s.db.movies[id]
	if !ok {
		return nil, store.ErrMovieNotFound
	}
	m.Actors = []domain.Actor{}
	for _, a := range sortedValues(s.db.actors, actorID) {
		if _, linked := s.db.castings[casting{movieID: id, actorID: a.ID}]; linked {
			a.DateOfBirth = copyDate(a.DateOfBirth)
			m.Actors = append(m.Actors, a)
		}
	}
	return &m, nil
}

func (s *MovieStore) Create(ctx context.Context, movie *domain.Movie, actorIDs []int64) error {
	if err := movie.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if !allExist(s.db.actors, actorIDs) {
		return store.ErrInvalidRelation
	}
	movie.ID = s.db.nextID("movies")
	s.db.movies[movie.ID] = bareMovie(movie)
	for _, aid := range actorIDs {
		s.db.castings[casting{movieID: movie.ID, actorID: aid}] = struct{}{}
	}
	return nil
}

func (s *MovieStore) Update(ctx context.Context, movie *domain.Movie, actorIDs []int64) error {
	if err := movie.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.movies[movie.ID]; !ok {
		return store.ErrMovieNotFound
	}
	if !allExist(s.db.actors, actorIDs) {
		return store.ErrInvalidRelation
	}
	s.db.movies[movie.ID] = bareMovie(movie)
	if actorIDs != nil {
		s.db.unlink(func(c casting) bool { return c.movieID == movie.ID })
		for _, aid := range actorIDs {
			s.db.castings[casting{movieID: movie.ID, actorID: aid}] = struct{}{}
		}
	}
	return nil
}

func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.movies[id]; !ok {
		return store.ErrMovieNotFound
	}
	delete(s.db.movies, id)
	s.db.unlink(func(c casting) bool { return c.movieID == id })
	return nil
}

// ActorStore implements store.ActorStore.
type ActorStore struct{ db *DB }

// NewActorStore returns an ActorStore backed by db.
func NewActorStore(db *DB) *ActorStore { return &ActorStore{db: db} }

var _ store.ActorStore = (*ActorStore)(nil)

func (s *ActorStore) List(ctx context.Context, page domain.Page) ([]domain.Actor, int64, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	all := sortedValues(s.db.actors, actorID)
	for i := range all {
		all[i].DateOfBirth = copyDate(all[i].DateOfBirth)
	}
	return domain.Slice(all, page), int64(len(all)), nil
}

func (s *ActorStore) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	a, ok := s.db.actors[id]
	if !ok {
		return nil, store.ErrActorNotFound
	}
	a.DateOfBirth = copyDate(a.DateOfBirth)
	a.Movies = []domain.Movie{}
	for _, m := range sortedValues(s.db.movies, movieID) {
		if _, linked := s.db.castings[casting{movieID: m.ID, actorID: id}]; linked {
			a.Movies = append(a.Movies, m)
		}
	}
	return &a, nil
}

func (s *ActorStore) Create(ctx context.Context, actor *domain.Actor, movieIDs []int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if !allExist(s.db.movies, movieIDs) {
		return store.ErrInvalidRelation
	}
	actor.ID = s.db.nextID("actors")
	s.db.actors[actor.ID] = bareActor(actor)
	for _, mid := range movieIDs {
		s.db.castings[casting{movieID: mid, actorID: actor.ID}] = struct{}{}
	}
	return nil
}

func (s *ActorStore) Update(ctx context.Context, actor *domain.Actor, movieIDs []int64) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.actors[actor.ID]; !ok {
		return store.ErrActorNotFound
	}
	if !allExist(s.db.movies, movieIDs) {
		return store.ErrInvalidRelation
	}
	s.db.actors[actor.ID] = bareActor(actor)
	if movieIDs != nil {
		s.db.unlink(func(c casting) bool { return c.actorID == actor.ID })
		for _, mid := range movieIDs {
			s.db.castings[casting{movieID: mid, actorID: actor.ID}] = struct{}{}
		}
	}
	return nil
}

func (s *ActorStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.actors[id]; !ok {
		return store.ErrActorNotFound
	}
	delete(s.db.actors, id)
	s.db.unlink(func(c casting) bool { return c.actorID == id })
	return nil
}

// unlink removes the castings matching drop. Callers hold the write lock.
func (db *DB) unlink(drop func(casting) bool) {
	for c := range db.castings {
		if drop(c) {
			delete(db.castings, c)
		}
	}
}

func movieID(m domain.Movie) int64 { return m.ID }
func actorID(a domain.Actor) int64 { return a.ID }

func bareMovie(m *domain.Movie) domain.Movie {
	stored := *m
	stored.Actors = nil
	return stored
}

func bareActor(a *domain.Actor) domain.Actor {
	stored := *a
	stored.Movies = nil
	stored.DateOfBirth = copyDate(a.DateOfBirth)
	return stored
}
