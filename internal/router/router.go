package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

// chatRequestTimeout is the outer, client-facing bound. The chat service's
// own 20s provider deadline fires first; this is the safety net.
const chatRequestTimeout = 25 * time.Second

func New(
	chatHandler *handlers.ChatHandler,
	projectsHandler *handlers.ProjectsHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Chat ────
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(chatRequestTimeout))
			r.Post("/chat", chatHandler.Ask)
		})

		// ──── Projects ────
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectsHandler.List)
			r.Get("/{slug}", projectsHandler.Get)
			r.Get("/{slug}/related", projectsHandler.Related)
		})
	})

	return r
}
