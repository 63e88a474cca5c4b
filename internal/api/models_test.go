package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeInputAcceptsObjectOrList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []domain.RecipePart
	}{
		{
			name: "single object",
			body: `{"title":"Latte","recipe":{"name":"milk","color":"white","parts":2}}`,
			want: []domain.RecipePart{{Name: "milk", Color: "white", Parts: 2}},
		},
		{
			name: "list",
			body: `{"title":"Latte","recipe":[{"name":"espresso","color":"brown","parts":1},{"name":"milk","color":"white","parts":2}]}`,
			want: []domain.RecipePart{{Name: "espresso", Color: "brown", Parts: 1}, {Name: "milk", Color: "white", Parts: 2}},
		},
		{name: "absent", body: `{"title":"Latte"}`},
		{name: "null", body: `{"title":"Latte","recipe":null}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req DrinkRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, []domain.RecipePart(req.Recipe))
		})
	}

	var req DrinkRequest
	assert.Error(t, json.Unmarshal([]byte(`{"recipe":"espresso"}`), &req))
}

func TestQuizCategoryIDAcceptsStringOrNumber(t *testing.T) {
	for body, want := range map[string]int64{
		`{"id": 3, "type": "Geography"}`:   3,
		`{"id": "3", "type": "Geography"}`: 3,
		`{"id": "", "type": "click"}`:      0,
		`{"type": "click"}`:                0,
	} {
		var c QuizCategoryRequest
		require.NoError(t, json.Unmarshal([]byte(body), &c), body)
		assert.Equal(t, want, int64(c.ID), body)
	}

	var c QuizCategoryRequest
	assert.Error(t, json.Unmarshal([]byte(`{"id": "three"}`), &c))
}

func TestActorToDetail(t *testing.T) {
	dob := time.Date(1975, time.June, 4, 0, 0, 0, 0, time.UTC)
	detail := actorToDetail(&domain.Actor{
		ID:          3,
		Name:        "Ann",
		DateOfBirth: &dob,
		Movies:      []domain.Movie{{ID: 1, Name: "Heat", Year: 1995}},
	})

	require.NotNil(t, detail.DateOfBirth)
	assert.Equal(t, "1975-06-04", *detail.DateOfBirth)
	assert.Equal(t, 1, detail.NoOfMovies)
	assert.Equal(t, []MovieShort{{ID: 1, Name: "Heat", Year: 1995}}, detail.Movies)

	assert.Nil(t, actorToDetail(&domain.Actor{Name: "Bob"}).DateOfBirth)
}

func TestMovieToDetailEmptyCast(t *testing.T) {
	detail := movieToDetail(&domain.Movie{ID: 1, Name: "Solo"})
	assert.Equal(t, 0, detail.NoOfActors)
	assert.NotNil(t, detail.Actors)
}
