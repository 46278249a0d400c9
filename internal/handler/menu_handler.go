package handler

import (
	"net/http"

	"prato/internal/model"
	"prato/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu and availability requests.
type MenuHandler struct {
	service service.MenuService
	clock   service.AvailabilityChecker
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService, clock service.AvailabilityChecker, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: svc,
		clock:   clock,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu?category={main|salad|optional} requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	category := r.URL.Query().Get("category")
	if !model.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, "unknown menu category", h.logger)
		return
	}

	items, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu", h.logger)
		return
	}

	if items == nil {
		items = []model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// availabilityResponse is the payload for GET /api/availability.
type availabilityResponse struct {
	Open   bool                 `json:"open"`
	Window *model.OpeningWindow `json:"window,omitempty"`
}

// Availability handles GET /api/availability requests.
func (h *MenuHandler) Availability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{
		Open:   h.clock.IsOpen(),
		Window: h.clock.Window(),
	})
}
