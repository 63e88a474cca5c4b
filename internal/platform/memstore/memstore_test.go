package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore(t *testing.T) {
	t.Parallel()
	s := NewCategoryStore(New())
	ctx := context.Background()

	categories, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategories(), categories)

	c, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Science", c.Type)

	_, err = s.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestQuestionStore(t *testing.T) {
	t.Parallel()
	s := NewQuestionStore(New())
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		q, err := domain.NewQuestion(fmt.Sprintf("Question number %d?", i), "answer", int64(i%3+1), 1)
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, q))
		assert.Equal(t, int64(i), q.ID)
	}

	t.Run("pagination", func(t *testing.T) {
		first, total, err := s.List(ctx, domain.Page{Number: 1, Size: domain.PageSize})
		require.NoError(t, err)
		assert.Equal(t, int64(12), total)
		assert.Len(t, first, 10)
		assert.Equal(t, int64(1), first[0].ID)

		second, _, err := s.List(ctx, domain.Page{Number: 2, Size: domain.PageSize})
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Equal(t, int64(11), second[0].ID)

		beyond, _, err := s.List(ctx, domain.Page{Number: 3, Size: domain.PageSize})
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})

	t.Run("search ignores case", func(t *testing.T) {
		found, err := s.Search(ctx, "NUMBER 1")
		require.NoError(t, err)
		assert.Len(t, found, 4) // 1, 10, 11, 12
	})

	t.Run("by category", func(t *testing.T) {
		found, err := s.ListByCategory(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, found, 4)
		for _, q := range found {
			assert.Equal(t, int64(1), q.Category)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		q := &domain.Question{Question: "q", Answer: "a", Category: 99, Difficulty: 1}
		assert.ErrorIs(t, s.Create(ctx, q), store.ErrUnknownCategory)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, 5))
		_, err := s.GetByID(ctx, 5)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
		assert.ErrorIs(t, s.Delete(ctx, 5), store.ErrQuestionNotFound)
	})
}

func TestDrinkStore(t *testing.T) {
	t.Parallel()
	s := NewDrinkStore(New())
	ctx := context.Background()

	recipe := []domain.RecipePart{{Name: "water", Color: "blue", Parts: 1}}
	water, err := domain.NewDrink("Water", recipe)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, water))
	assert.Equal(t, int64(1), water.ID)

	dup, err := domain.NewDrink("Water", recipe)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Create(ctx, dup), store.ErrTitleExists)

	tea, err := domain.NewDrink("Tea", recipe)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, tea))

	tea.Title = "Water"
	assert.ErrorIs(t, s.Update(ctx, tea), store.ErrTitleExists)

	tea.Title = "Green Tea"
	require.NoError(t, s.Update(ctx, tea))

	got, err := s.GetByID(ctx, tea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", got.Title)

	got.Recipe[0].Name = "mutated"
	again, err := s.GetByID(ctx, tea.ID)
	require.NoError(t, err)
	assert.Equal(t, "water", again.Recipe[0].Name)

	drinks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drinks, 2)

	ghost := &domain.Drink{ID: 99, Title: "Ghost", Recipe: recipe}
	assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrDrinkNotFound)
	require.NoError(t, s.Delete(ctx, water.ID))
	assert.ErrorIs(t, s.Delete(ctx, water.ID), store.ErrDrinkNotFound)
}

func TestCastingStores(t *testing.T) {
	t.Parallel()
	db := New()
	movies := NewMovieStore(db)
	actors := NewActorStore(db)
	ctx := context.Background()

	dob := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	a1 := &domain.Actor{Name: "Ada", DateOfBirth: &dob}
	a2 := &domain.Actor{Name: "Bo"}
	require.NoError(t, actors.Create(ctx, a1, nil))
	require.NoError(t, actors.Create(ctx, a2, nil))

	m := &domain.Movie{Name: "Heat", Year: 1995}
	require.NoError(t, movies.Create(ctx, m, []int64{a1.ID, a2.ID}))

	got, err := movies.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, got.Actors, 2)
	assert.Equal(t, "Ada", got.Actors[0].Name)

	a, err := actors.GetByID(ctx, a1.ID)
	require.NoError(t, err)
	require.Len(t, a.Movies, 1)
	assert.Equal(t, "Heat", a.Movies[0].Name)

	t.Run("invalid relation writes nothing", func(t *testing.T) {
		err := movies.Create(ctx, &domain.Movie{Name: "Nope"}, []int64{a1.ID, 99})
		assert.ErrorIs(t, err, store.ErrInvalidRelation)
		_, total, err := movies.List(ctx, domain.Page{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		err = actors.Update(ctx, &domain.Actor{ID: a2.ID, Name: "Changed"}, []int64{99})
		assert.ErrorIs(t, err, store.ErrInvalidRelation)
		unchanged, err := actors.GetByID(ctx, a2.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bo", unchanged.Name)
	})

	t.Run("nil ids keep links", func(t *testing.T) {
		m.Rating = 7.5
		require.NoError(t, movies.Update(ctx, m, nil))
		got, err := movies.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Len(t, got.Actors, 2)
		assert.Equal(t, 7.5, got.Rating)
	})

	t.Run("empty ids clear links", func(t *testing.T) {
		require.NoError(t, actors.Update(ctx, a2, []int64{}))
		got, err := movies.GetByID(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, got.Actors, 1)
		assert.Equal(t, a1.ID, got.Actors[0].ID)
	})

	t.Run("delete removes links", func(t *testing.T) {
		require.NoError(t, actors.Delete(ctx, a1.ID))
		got, err := movies.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Actors)
		assert.ErrorIs(t, actors.Delete(ctx, a1.ID), store.ErrActorNotFound)

		require.NoError(t, movies.Delete(ctx, m.ID))
		_, err = movies.GetByID(ctx, m.ID)
		assert.ErrorIs(t, err, store.ErrMovieNotFound)
	})
}
