package api_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"testing"

	"github.com/phrazzld/crudsuite/internal/api"
	"github.com/phrazzld/crudsuite/internal/api/middleware"
	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/memstore"
	"github.com/phrazzld/crudsuite/internal/service"
	"github.com/phrazzld/crudsuite/internal/service/auth"
	"github.com/phrazzld/crudsuite/internal/testutils"
	"github.com/stretchr/testify/require"
)

func routerOptions(t *testing.T) api.RouterOptions {
	t.Helper()
	return api.RouterOptions{AllowedOrigins: []string{"*"}}
}

func testAuthMiddleware(t *testing.T) *middleware.AuthMiddleware {
	t.Helper()
	verifier, err := auth.NewHMACVerifier([]byte(testutils.TestHMACSecret), testutils.TestIssuer, testutils.TestAudience)
	require.NoError(t, err)
	return middleware.NewAuthMiddleware(verifier)
}

// newTriviaServer returns the trivia router over a memory store seeded with
// count questions, alternating between categories 1 and 2.
func newTriviaServer(t *testing.T, count int) http.Handler {
	t.Helper()
	db := memstore.New()
	questions := memstore.NewQuestionStore(db)
	for i := 1; i <= count; i++ {
		q, err := domain.NewQuestion(fmt.Sprintf("Question %d?", i), fmt.Sprintf("Answer %d", i), int64(i%2+1), 2)
		require.NoError(t, err)
		require.NoError(t, questions.Create(context.Background(), q))
	}
	svc, err := service.NewTriviaService(memstore.NewCategoryStore(db), questions, nil,
		service.WithRand(rand.New(rand.NewPCG(7, 11))))
	require.NoError(t, err)
	return api.NewTriviaRouter(api.NewTriviaHandler(svc, nil), routerOptions(t))
}

func newCoffeeServer(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.NewDrinkService(memstore.NewDrinkStore(memstore.New()), nil)
	require.NoError(t, err)
	return api.NewCoffeeRouter(api.NewDrinkHandler(svc, nil), testAuthMiddleware(t), routerOptions(t))
}

func newCastingServer(t *testing.T) http.Handler {
	t.Helper()
	db := memstore.New()
	svc, err := service.NewCastingService(memstore.NewMovieStore(db), memstore.NewActorStore(db), nil)
	require.NoError(t, err)
	authCfg := config.AuthConfig{
		Domain:      testutils.TestDomain,
		Audience:    testutils.TestAudience,
		ClientID:    "client-123",
		CallbackURL: "http://localhost:8080/callback",
	}
	return api.NewCastingRouter(
		api.NewCastingHandler(svc, nil),
		api.NewAuthHandler(authCfg),
		testAuthMiddleware(t),
		routerOptions(t),
	)
}
