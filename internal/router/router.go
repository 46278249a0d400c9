package router

import (
	"net/http"
	"strings"

	"prato/internal/handler"
	"prato/internal/middleware"
	"prato/internal/session"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	validateHandler *handler.ValidateHandler,
	sessions *session.Manager,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/menu", menuHandler.List)
	mux.HandleFunc("/api/availability", menuHandler.Availability)
	mux.HandleFunc("/api/validate", validateHandler.Check)

	mux.HandleFunc("/api/cart", cartHandler.Get)

	// Cart item routes: POST on the collection, DELETE on a member
	cartItemsHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/cart/items" || r.URL.Path == "/api/cart/items/") {
			cartHandler.AddItem(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") && r.URL.Path != "/api/cart/items/" {
			cartHandler.RemoveItem(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/cart/items", cartItemsHandler)
	mux.HandleFunc("/api/cart/items/", cartItemsHandler)

	mux.HandleFunc("/api/orders", orderHandler.Create)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(sessions, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
