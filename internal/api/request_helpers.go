package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/crudsuite/internal/domain"
)

// getPathID extracts a positive integer id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidID, paramName, raw)
	}
	return id, nil
}

// getPage reads the "page" query parameter. When it is absent or not an
// integer the result is defaultPage, which may be the zero Page. Integers
// below 1 are rejected with domain.ErrInvalidPage.
func getPage(r *http.Request, defaultPage domain.Page) (domain.Page, error) {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return defaultPage, nil
	}
	return domain.NewPage(number)
}
