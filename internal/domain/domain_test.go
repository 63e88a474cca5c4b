package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		question   string
		answer     string
		category   int64
		difficulty int
		wantField  string
	}{
		{name: "valid", question: "What is H2O?", answer: "Water", category: 1, difficulty: 2},
		{name: "blank question", question: "  ", answer: "Water", category: 1, difficulty: 2, wantField: "question"},
		{name: "missing answer", question: "What is H2O?", category: 1, difficulty: 2, wantField: "answer"},
		{name: "missing category", question: "What is H2O?", answer: "Water", difficulty: 2, wantField: "category"},
		{name: "difficulty too high", question: "What is H2O?", answer: "Water", category: 1, difficulty: 6, wantField: "difficulty"},
		{name: "difficulty zero", question: "What is H2O?", answer: "Water", category: 1, wantField: "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuestion(tt.question, tt.answer, tt.category, tt.difficulty)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.category, q.Category)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNewDrink(t *testing.T) {
	t.Parallel()

	valid := []RecipePart{{Color: "brown", Name: "espresso", Parts: 1}}

	d, err := NewDrink(" latte ", valid)
	require.NoError(t, err)
	assert.Equal(t, "latte", d.Title)

	_, err = NewDrink("latte", nil)
	assert.ErrorIs(t, err, ErrEmptyRecipe)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDrink("latte", []RecipePart{{Color: "brown", Name: "espresso", Parts: 0}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDrink("latte", []RecipePart{{Name: "espresso", Parts: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDrink(strings.Repeat("é", MaxDrinkTitleLength), valid)
	assert.NoError(t, err)

	_, err = NewDrink(strings.Repeat("a", MaxDrinkTitleLength+1), valid)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMovieValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Movie{Name: "Heat"}).Validate())
	assert.NoError(t, (&Movie{Name: "Heat", Year: 1995, Rating: 8.3}).Validate())
	assert.ErrorIs(t, (&Movie{}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Movie{Name: "Heat", Year: 1700}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Movie{Name: "Heat", Rating: 11}).Validate(), ErrValidation)
}

func TestActorValidate(t *testing.T) {
	t.Parallel()

	dob, err := ParseDate("1943-08-17")
	require.NoError(t, err)
	assert.NoError(t, (&Actor{Name: "Robert De Niro", DateOfBirth: &dob}).Validate())

	future := time.Now().Add(48 * time.Hour)
	assert.ErrorIs(t, (&Actor{Name: "Nobody", DateOfBirth: &future}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Actor{}).Validate(), ErrValidation)

	_, err = ParseDate("17/08/1943")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPage(t *testing.T) {
	t.Parallel()

	_, err := NewPage(0)
	assert.ErrorIs(t, err, ErrInvalidPage)
	assert.False(t, errors.Is(err, ErrValidation))

	p, err := NewPage(3)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, PageSize, p.Limit())
	assert.False(t, p.IsZero())

	var all Page
	assert.True(t, all.IsZero())
	assert.Equal(t, -1, all.Limit())
}

func TestSlice(t *testing.T) {
	t.Parallel()

	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	first, _ := NewPage(1)
	third, _ := NewPage(3)
	fourth, _ := NewPage(4)

	assert.Len(t, Slice(items, first), PageSize)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, Slice(items, third))
	assert.Empty(t, Slice(items, fourth))
	assert.Len(t, Slice(items, Page{}), 25)
}
