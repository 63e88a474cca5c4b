package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/phrazzld/crudsuite/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoffeeDrinks(t *testing.T) {
	t.Parallel()
	server := newCoffeeServer(t)
	barista := testutils.BearerToken(t, "get:drinks-detail")
	manager := testutils.BearerToken(t, "get:drinks-detail", "post:drinks", "patch:drinks", "delete:drinks")

	rec := testutils.DoRequest(t, server, http.MethodGet, "/drinks", nil, "")
	testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "resource not found")
	rec = testutils.DoRequest(t, server, http.MethodGet, "/drinks-detail", nil, barista)
	testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "resource not found")

	t.Run("create requires permission", func(t *testing.T) {
		body := map[string]interface{}{"title": "Water", "recipe": []map[string]interface{}{{"name": "water", "color": "blue", "parts": 1}}}

		rec := testutils.DoRequest(t, server, http.MethodPost, "/drinks", body, "")
		testutils.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Authorization header is expected.")

		rec = testutils.DoRequest(t, server, http.MethodPost, "/drinks", body, barista)
		testutils.AssertErrorResponse(t, rec, http.StatusForbidden, "Permission not found.")
	})

	// A single recipe part may be sent as an object.
	rec = testutils.DoRequest(t, server, http.MethodPost, "/drinks", map[string]interface{}{
		"title":  "Espresso",
		"recipe": map[string]interface{}{"name": "espresso", "color": "brown", "parts": 1},
	}, manager)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	drinks := testutils.DecodeBody(t, rec)["drinks"].([]interface{})
	require.Len(t, drinks, 1)
	espresso := drinks[0].(map[string]interface{})
	assert.Equal(t, "Espresso", espresso["title"])
	id := espresso["id"].(float64)

	t.Run("duplicate title", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodPost, "/drinks", map[string]interface{}{
			"title":  "Espresso",
			"recipe": []map[string]interface{}{{"name": "espresso", "color": "brown", "parts": 2}},
		}, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("missing title or recipe", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodPost, "/drinks", map[string]interface{}{
			"recipe": []map[string]interface{}{{"name": "milk", "color": "white", "parts": 1}},
		}, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "unprocessable")

		rec = testutils.DoRequest(t, server, http.MethodPost, "/drinks", map[string]interface{}{"title": "Air"}, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("title longer than 80 characters", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodPost, "/drinks", map[string]interface{}{
			"title":  strings.Repeat("x", 81),
			"recipe": []map[string]interface{}{{"name": "milk", "color": "white", "parts": 1}},
		}, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("public list hides ingredient names", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodGet, "/drinks", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"name"`)
		assert.Contains(t, rec.Body.String(), `"color":"brown"`)
	})

	t.Run("detail list", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodGet, "/drinks-detail", nil, barista)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"espresso"`)
	})

	t.Run("patch title only", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodPatch, "/drinks/1", map[string]string{"title": "Ristretto"}, manager)
		require.Equal(t, http.StatusOK, rec.Code)
		drink := testutils.DecodeBody(t, rec)["drinks"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Ristretto", drink["title"])
		assert.Len(t, drink["recipe"], 1)

		rec = testutils.DoRequest(t, server, http.MethodPatch, "/drinks/99", map[string]string{"title": "Ghost"}, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "resource not found")
	})

	t.Run("delete", func(t *testing.T) {
		rec := testutils.DoRequest(t, server, http.MethodDelete, "/drinks/1", nil, manager)
		require.Equal(t, http.StatusOK, rec.Code)
		body := testutils.DecodeBody(t, rec)
		assert.Equal(t, id, body["delete"])

		rec = testutils.DoRequest(t, server, http.MethodDelete, "/drinks/1", nil, manager)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "resource not found")
	})
}
