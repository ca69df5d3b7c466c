package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appmw "github.com/itchan-dev/threadboard/internal/middleware"
	"github.com/itchan-dev/threadboard/internal/setup"
	mw "github.com/itchan-dev/threadboard/shared/middleware"
	"github.com/itchan-dev/threadboard/shared/middleware/metrics"
)

// maxBodyBytes bounds both form and JSON submissions
const maxBodyBytes = 64 << 10

// New creates the router serving the forum page, its JSON surface and ops endpoints.
func New(deps *setup.Dependencies) http.Handler {
	public := deps.Config.Public
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(public.SecureCookies, mw.PageCSP))
	r.Use(chimw.RequestSize(maxBodyBytes))

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	submitLimit := mw.RateLimit(deps.SubmitLimiter, mw.GetIP)
	// Sessions are only started by submissions, which are rate limited.
	// Reads from clients without one are served from a seeded preview.
	viewSession := appmw.ViewSessionStores(deps.Sessions)
	startSession := appmw.SessionStores(deps.Sessions, public.SecureCookies)

	// Server-rendered page
	r.Group(func(r chi.Router) {
		r.Use(appmw.GenerateCSRFToken(appmw.CSRFConfig{SecureCookies: public.SecureCookies}))
		r.Use(appmw.ValidateCSRFToken())
		r.With(viewSession).Get("/", h.IndexGetHandler)
		r.With(submitLimit, startSession).Post("/", h.IndexPostHandler)
	})

	// JSON surface for script clients
	r.Route("/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   public.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.With(viewSession).Get("/threads", h.ListThreads)
		// A JSON-only body keeps cross-site text/plain form posts out
		r.With(submitLimit, chimw.AllowContentType("application/json"), startSession).Post("/threads", h.CreateThread)
	})

	return r
}
