package memstore

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
)

type casting struct {
	movieID int64
	actorID int64
}

// DB is the shared in-memory state of every store.
type DB struct {
	mu sync.RWMutex

	categories map[int64]domain.Category
	questions  map[int64]domain.Question
	drinks     map[int64]domain.Drink
	movies     map[int64]domain.Movie
	actors     map[int64]domain.Actor
	castings   map[casting]struct{}

	sequences map[string]int64
}

// New returns an empty DB seeded with the default trivia categories.
func New() *DB {
	db := &DB{
		categories: make(map[int64]domain.Category),
		questions:  make(map[int64]domain.Question),
		drinks:     make(map[int64]domain.Drink),
		movies:     make(map[int64]domain.Movie),
		actors:     make(map[int64]domain.Actor),
		castings:   make(map[casting]struct{}),
		sequences:  make(map[string]int64),
	}
	for _, c := range domain.DefaultCategories() {
		db.categories[c.ID] = c
		if c.ID > db.sequences["categories"] {
			db.sequences["categories"] = c.ID
		}
	}
	return db
}

// nextID advances the named sequence. Callers hold the write lock.
func (db *DB) nextID(table string) int64 {
	db.sequences[table]++
	return db.sequences[table]
}

// sortedValues returns the values of m ordered by id.
func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	values := make([]T, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b T) int {
		return cmp.Compare(id(a), id(b))
	})
	return values
}

// allExist reports whether every id is a key of m.
func allExist[T any](m map[int64]T, ids []int64) bool {
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			return false
		}
	}
	return true
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
