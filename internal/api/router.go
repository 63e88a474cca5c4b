package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/crudsuite/internal/api/middleware"
)

// Permissions checked by the coffee and casting routers.
const (
	PermGetDrinksDetail = "get:drinks-detail"
	PermPostDrinks      = "post:drinks"
	PermPatchDrinks     = "patch:drinks"
	PermDeleteDrinks    = "delete:drinks"

	PermViewActor   = "view:actor"
	PermCreateActor = "create:actor"
	PermModifyActor = "modify:actor"
	PermDeleteActor = "delete:actor"
	PermViewMovie   = "view:movie"
	PermCreateMovie = "create:movie"
	PermModifyMovie = "modify:movie"
	PermDeleteMovie = "delete:movie"
)

// RouterOptions holds what every service router shares.
type RouterOptions struct {
	Logger *slog.Logger
	// AllowedOrigins lists the cross-origin callers; "*" allows any.
	AllowedOrigins []string
}

// newBaseRouter returns a router with the common middleware stack, error
// handlers and health check.
func newBaseRouter(opts RouterOptions) *chi.Mux {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.TraceMiddleware(log))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return r
}

// NewTriviaRouter returns the public trivia API.
func NewTriviaRouter(h *TriviaHandler, opts RouterOptions) http.Handler {
	r := newBaseRouter(opts)

	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Delete("/questions/{id}", h.DeleteQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{id}/questions", h.QuestionsByCategory)
	r.Post("/quizzes", h.NextQuizQuestion)

	return r
}

// NewCoffeeRouter returns the coffee shop API. Only GET /drinks is public.
func NewCoffeeRouter(h *DrinkHandler, authMiddleware *middleware.AuthMiddleware, opts RouterOptions) http.Handler {
	r := newBaseRouter(opts)

	r.Get("/drinks", h.ListDrinks)
	r.With(authMiddleware.Require(PermGetDrinksDetail)).Get("/drinks-detail", h.ListDrinksDetail)
	r.With(authMiddleware.Require(PermPostDrinks)).Post("/drinks", h.CreateDrink)
	r.With(authMiddleware.Require(PermPatchDrinks)).Patch("/drinks/{id}", h.UpdateDrink)
	r.With(authMiddleware.Require(PermDeleteDrinks)).Delete("/drinks/{id}", h.DeleteDrink)

	return r
}

// NewCastingRouter returns the casting agency API. Every resource route
// requires a permission; the login helper is public.
func NewCastingRouter(
	h *CastingHandler,
	authHandler *AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	opts RouterOptions,
) http.Handler {
	r := newBaseRouter(opts)

	r.Get("/authorization/url", authHandler.AuthorizationURL)

	r.Route("/actors", func(r chi.Router) {
		r.With(authMiddleware.Require(PermViewActor)).Get("/", h.ListActors)
		r.With(authMiddleware.Require(PermCreateActor)).Post("/", h.CreateActor)
		r.With(authMiddleware.Require(PermViewActor)).Get("/{id}", h.GetActor)
		r.With(authMiddleware.Require(PermModifyActor)).Patch("/{id}", h.UpdateActor)
		r.With(authMiddleware.Require(PermDeleteActor)).Delete("/{id}", h.DeleteActor)
	})

	r.Route("/movies", func(r chi.Router) {
		r.With(authMiddleware.Require(PermViewMovie)).Get("/", h.ListMovies)
		r.With(authMiddleware.Require(PermCreateMovie)).Post("/", h.CreateMovie)
		r.With(authMiddleware.Require(PermViewMovie)).Get("/{id}", h.GetMovie)
		r.With(authMiddleware.Require(PermModifyMovie)).Patch("/{id}", h.UpdateMovie)
		r.With(authMiddleware.Require(PermDeleteMovie)).Delete("/{id}", h.DeleteMovie)
	})

	return r
}
