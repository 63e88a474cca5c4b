package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// Error codes returned in AuthError.Code.
const (
	CodeHeaderMissing = "authorization_header_missing"
	CodeInvalidHeader = "invalid_header"
	CodeTokenExpired  = "token_expired"
	CodeInvalidClaims = "invalid_claims"
	CodeUnauthorized  = "unauthorized"
)

// AuthError describes why a request was refused. StatusCode is the HTTP
// status to answer with; Description is safe to return to the client.
type AuthError struct {
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(status int, code, description string, err error) *AuthError {
	return &AuthError{StatusCode: status, Code: code, Description: description, Err: err}
}

// ErrKeySetUnavailable is returned when the issuer's key set cannot be
// fetched. It is an infrastructure failure, not a client error.
var ErrKeySetUnavailable = errors.New("signing key set unavailable")

var (
	errMissingKeyID = errors.New("token header has no kid")
	errUnknownKeyID = errors.New("no signing key matches kid")
)

// classifyParseError turns a jwt parse failure into the AuthError reported
// to clients. Key set outages pass through unchanged.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, ErrKeySetUnavailable):
		return err
	case errors.Is(err, errMissingKeyID):
		return newAuthError(http.StatusUnauthorized, CodeInvalidHeader, "Authorization malformed.", err)
	case errors.Is(err, errUnknownKeyID):
		return newAuthError(http.StatusBadRequest, CodeInvalidHeader, "Unable to find the appropriate key.", err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return newAuthError(http.StatusUnauthorized, CodeTokenExpired, "Token expired.", err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return newAuthError(http.StatusUnauthorized, CodeInvalidClaims,
			"Incorrect claims. Please, check the audience and issuer.", err)
	default:
		return newAuthError(http.StatusBadRequest, CodeInvalidHeader, "Unable to parse authentication token.", err)
	}
}
