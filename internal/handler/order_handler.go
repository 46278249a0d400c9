package handler

import (
	"encoding/json"
	"net/http"

	"prato/internal/middleware"
	"prato/internal/model"
	"prato/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order submission requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusInternalServerError, "no session", h.logger)
		return
	}

	var submitter model.Submitter
	if err := json.NewDecoder(r.Body).Decode(&submitter); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	// keep the draft around so a failed attempt can be corrected
	sess.SetSubmitter(submitter)

	order, err := h.service.Submit(r.Context(), sess, submitter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
