package handler

import (
	"encoding/json"
	"net/http"

	"prato/internal/validate"

	"github.com/rs/zerolog"
)

// ValidateHandler exposes the field predicates so clients can check a
// draft value while the user types. It runs the exact predicates the
// submission path runs, so typing-time and submit-time rules agree.
type ValidateHandler struct {
	logger zerolog.Logger
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(logger zerolog.Logger) *ValidateHandler {
	return &ValidateHandler{
		logger: logger.With().Str("handler", "validate").Logger(),
	}
}

// validateRequest is the payload for POST /api/validate.
type validateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// validateResponse is the result of a draft check.
type validateResponse struct {
	Valid bool `json:"valid"`
}

// Check handles POST /api/validate requests. An empty draft value is
// always reported valid: the UI lets users clear a field while typing and
// enforces presence only at submission.
func (h *ValidateHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	var valid bool
	switch req.Field {
	case "name":
		valid = req.Value == "" || validate.Name(req.Value)
	case "registration":
		valid = validate.RegistrationDraft(req.Value)
	case "notes":
		valid = validate.Notes(req.Value)
	default:
		writeError(w, http.StatusBadRequest, "unknown field", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{Valid: valid})
}
