package api

import (
	"net/http"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/service/auth"
)

// AuthHandler serves the login helper of the casting service.
type AuthHandler struct {
	authConfig config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authConfig config.AuthConfig) *AuthHandler {
	return &AuthHandler{authConfig: authConfig}
}

// AuthorizationURLResponse is returned by GET /authorization/url.
type AuthorizationURLResponse struct {
	URL string `json:"url"`
}

// AuthorizationURL handles GET /authorization/url. It returns the issuer's
// login URL for obtaining a bearer token.
func (h *AuthHandler) AuthorizationURL(w http.ResponseWriter, r *http.Request) {
	u, err := auth.AuthorizeURL(h.authConfig)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, AuthorizationURLResponse{URL: u})
}
