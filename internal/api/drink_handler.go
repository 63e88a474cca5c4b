package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/service"
)

// DrinkHandler handles the coffee shop drink requests.
type DrinkHandler struct {
	drinkService service.DrinkService
	logger       *slog.Logger
}

// NewDrinkHandler creates a new DrinkHandler
func NewDrinkHandler(drinkService service.DrinkService, logger *slog.Logger) *DrinkHandler {
	if drinkService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("drinkService cannot be nil for DrinkHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DrinkHandler{
		drinkService: drinkService,
		logger:       logger.With(slog.String("component", "drink_handler")),
	}
}

// ListDrinks handles GET /drinks with the short representation. An empty
// menu is answered with 404.
func (h *DrinkHandler) ListDrinks(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.drinkService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	short := make([]DrinkShort, 0, len(drinks))
	for _, d := range drinks {
		short = append(short, drinkToShort(d))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DrinksShortResponse{Success: true, Drinks: short})
}

// ListDrinksDetail handles GET /drinks-detail with the long representation.
func (h *DrinkHandler) ListDrinksDetail(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.drinkService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DrinksLongResponse{Success: true, Drinks: drinks})
}

// CreateDrink handles POST /drinks.
func (h *DrinkHandler) CreateDrink(w http.ResponseWriter, r *http.Request) {
	var req DrinkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if req.Title == nil {
		HandleAPIError(w, r, domain.NewValidationError("title", "is required", domain.ErrEmptyContent))
		return
	}

	drink, err := h.drinkService.Create(r.Context(), *req.Title, req.Recipe)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DrinksLongResponse{Success: true, Drinks: []domain.Drink{*drink}})
}

// UpdateDrink handles PATCH /drinks/{id}. Absent fields keep their value.
func (h *DrinkHandler) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req DrinkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	drink, err := h.drinkService.Update(r.Context(), id, service.DrinkUpdate{
		Title:  req.Title,
		Recipe: req.Recipe,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DrinksLongResponse{Success: true, Drinks: []domain.Drink{*drink}})
}

// DeleteDrink handles DELETE /drinks/{id}.
func (h *DrinkHandler) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.drinkService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteDrinkResponse{Success: true, Delete: id})
}
