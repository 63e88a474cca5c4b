package memstore

import (
	"context"
	"slices"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/store"
)

// DrinkStore implements store.DrinkStore.
type DrinkStore struct{ db *DB }

// NewDrinkStore returns a DrinkStore backed by db.
func NewDrinkStore(db *DB) *DrinkStore { return &DrinkStore{db: db} }

var _ store.DrinkStore = (*DrinkStore)(nil)

func (s *DrinkStore) List(ctx context.Context) ([]domain.Drink, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	drinks := sortedValues(s.db.drinks, func(d domain.Drink) int64 { return d.ID })
	for i := range drinks {
		drinks[i].Recipe = slices.Clone(drinks[i].Recipe)
	}
	return drinks, nil
}

func (s *DrinkStore) GetByID(ctx context.Context, id int64) (*domain.Drink, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	d, ok := s.db.drinks[id]
	if !ok {
		return nil, store.ErrDrinkNotFound
	}
	d.Recipe = slices.Clone(d.Recipe)
	return &d, nil
}

func (s *DrinkStore) Create(ctx context.Context, drink *domain.Drink) error {
	if err := drink.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.titleTaken(drink.Title, 0) {
		return store.ErrTitleExists
	}
	drink.ID = s.db.nextID("drinks")
	stored := *drink
	stored.Recipe = slices.Clone(drink.Recipe)
	s.db.drinks[drink.ID] = stored
	return nil
}

func (s *DrinkStore) Update(ctx context.Context, drink *domain.Drink) error {
	if err := drink.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.drinks[drink.ID]; !ok {
		return store.ErrDrinkNotFound
	}
	if s.titleTaken(drink.Title, drink.ID) {
		return store.ErrTitleExists
	}
	stored := *drink
	stored.Recipe = slices.Clone(drink.Recipe)
	s.db.drinks[drink.ID] = stored
	return nil
}

func (s *DrinkStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.drinks[id]; !ok {
		return store.ErrDrinkNotFound
	}
	delete(s.db.drinks, id)
	return nil
}

// titleTaken reports whether a drink other than except uses title.
func (s *DrinkStore) titleTaken(title string, except int64) bool {
	for id, d := range s.db.drinks {
		if id != except && d.Title == title {
			return true
		}
	}
	return false
}
