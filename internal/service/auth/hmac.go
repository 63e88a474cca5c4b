package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
)

// MinHMACSecretLength is the shortest accepted HS256 secret.
const MinHMACSecretLength = 32

// HMACVerifier validates HS256 tokens signed with a shared secret.
type HMACVerifier struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

var _ Verifier = (*HMACVerifier)(nil)

// NewHMACVerifier creates an HMACVerifier. Empty issuer or audience skips
// that claim check.
func NewHMACVerifier(secret []byte, issuer, audience string) (*HMACVerifier, error) {
	if len(secret) < MinHMACSecretLength {
		return nil, fmt.Errorf("hmac secret must be at least %d characters", MinHMACSecretLength)
	}
	return &HMACVerifier{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		leeway:   30 * time.Second,
	}, nil
}

// Verify implements Verifier.
func (v *HMACVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, parserOptions(jwt.SigningMethodHS256.Name, v.issuer, v.audience, v.leeway))
	if err != nil {
		logger.FromContext(ctx).Debug("token rejected", "error", err.Error())
		return nil, err
	}
	return claims, nil
}
