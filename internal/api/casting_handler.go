package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/service"
)

// CastingHandler handles the movie and actor requests of the casting agency.
type CastingHandler struct {
	castingService service.CastingService
	logger         *slog.Logger
}

// NewCastingHandler creates a new CastingHandler
func NewCastingHandler(castingService service.CastingService, logger *slog.Logger) *CastingHandler {
	if castingService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("castingService cannot be nil for CastingHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CastingHandler{
		castingService: castingService,
		logger:         logger.With(slog.String("component", "casting_handler")),
	}
}

// ListActors handles GET /actors[?page=N]. Without a page every actor is
// returned.
func (h *CastingHandler) ListActors(w http.ResponseWriter, r *http.Request) {
	page, err := getPage(r, domain.Page{})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	actors, total, err := h.castingService.ListActors(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	short := make([]ActorShort, 0, len(actors))
	for _, a := range actors {
		short = append(short, actorToShort(a))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ActorsResponse{Success: true, Actors: short, TotalActors: total})
}

// GetActor handles GET /actors/{id}.
func (h *CastingHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	actor, err := h.castingService.GetActor(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ActorResponse{Success: true, Actor: actorToDetail(actor)})
}

// CreateActor handles POST /actors.
func (h *CastingHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	actor, err := h.castingService.CreateActor(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"created_actor": actorToShort(*actor),
	})
}

// UpdateActor handles PATCH /actors/{id}.
func (h *CastingHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req ActorRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	actor, err := h.castingService.UpdateActor(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"updated_actor": actorToShort(*actor),
	})
}

// DeleteActor handles DELETE /actors/{id}.
func (h *CastingHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	actor, err := h.castingService.DeleteActor(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"deleted_actor": actorToShort(*actor),
	})
}

// ListMovies handles GET /movies[?page=N]. Without a page every movie is
// returned.
func (h *CastingHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	page, err := getPage(r, domain.Page{})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	movies, total, err := h.castingService.ListMovies(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	short := make([]MovieShort, 0, len(movies))
	for _, m := range movies {
		short = append(short, movieToShort(m))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MoviesResponse{Success: true, Movies: short, TotalMovies: total})
}

// GetMovie handles GET /movies/{id}.
func (h *CastingHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	movie, err := h.castingService.GetMovie(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MovieResponse{Success: true, Movie: movieToDetail(movie)})
}

// CreateMovie handles POST /movies.
func (h *CastingHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	movie, err := h.castingService.CreateMovie(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"created_movie": movieToShort(*movie),
	})
}

// UpdateMovie handles PATCH /movies/{id}.
func (h *CastingHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req MovieRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	movie, err := h.castingService.UpdateMovie(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"updated_movie": movieToShort(*movie),
	})
}

// DeleteMovie handles DELETE /movies/{id}.
func (h *CastingHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	movie, err := h.castingService.DeleteMovie(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":       true,
		"deleted_movie": movieToShort(*movie),
	})
}

func (req ActorRequest) toInput() service.ActorInput {
	return service.ActorInput{
		Name:        req.Name,
		Nationality: req.Nationality,
		DateOfBirth: req.DateOfBirth,
		MovieIDs:    req.Movies,
	}
}

func (req MovieRequest) toInput() service.MovieInput {
	return service.MovieInput{
		Name:     req.Name,
		Genre:    req.Genre,
		Language: req.Language,
		Year:     req.Year,
		Rating:   req.Rating,
		ActorIDs: req.Actors,
	}
}
