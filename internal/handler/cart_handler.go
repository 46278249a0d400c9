package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"prato/internal/middleware"
	"prato/internal/model"
	"prato/internal/service"
	"prato/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler handles cart requests for the caller's session.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the payload for POST /api/cart/items.
type addItemRequest struct {
	ItemID string `json:"itemId"`
}

// cartResponse is the payload for cart reads and mutations.
type cartResponse struct {
	Items     []model.CartEntry `json:"items"`
	PanelOpen bool              `json:"panelOpen"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusInternalServerError, "no session", h.logger)
		return
	}

	h.writeCart(w, sess)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusInternalServerError, "no session", h.logger)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required", h.logger)
		return
	}

	if err := h.service.AddItem(r.Context(), sess, req.ItemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sess)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusInternalServerError, "no session", h.logger)
		return
	}

	itemID := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "item ID is required", h.logger)
		return
	}

	// removing an absent id is a no-op, not an error
	h.service.RemoveItem(sess, itemID)
	h.writeCart(w, sess)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, sess *session.Session) {
	items := h.service.List(sess)
	if items == nil {
		items = []model.CartEntry{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:     items,
		PanelOpen: sess.Cart.PanelOpen(),
	})
}
