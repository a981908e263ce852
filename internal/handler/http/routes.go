package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// preflight requests are answered before anything else runs
	router.Use(h.withCORS)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.root)
	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)
	router.Get("/version", h.getServerVersion)

	router.Post("/jwt", h.createToken)

	router.Route("/user", func(r chi.Router) {
		r.With(h.auth).Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUserByID)
		r.Delete("/{id}", h.deleteUser)
		r.Get("/email/{email}", h.getUserByEmail)
		r.With(h.auth, h.requireSelf, h.requireAdmin).Get("/admin/{email}", h.getAdminStatus)
	})

	router.Route("/view", func(r chi.Router) {
		r.Get("/", h.listViews)
		r.Post("/", h.createView)
		r.Get("/{email}", h.listViewsByEmail)
		r.Get("/id/{id}", h.getViewByID)
		r.Delete("/{id}", h.deleteView)
	})

	router.Route("/search", func(r chi.Router) {
		r.Get("/", h.search)
		r.With(h.auth, h.requireAdmin).Get("/logs", h.listSearchLogs)
	})

	return router
}
