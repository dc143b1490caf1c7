package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// console pages and actions
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.index)
		r.Get("/version", h.version)
		r.Post("/refresh", h.refresh)

		r.Post("/frontends/new", h.openAdd)
		r.Post("/frontends/{name}/edit", h.openEdit)
		r.Post("/frontends/{name}/upload", h.openUpload)
		r.Post("/frontends/{name}/delete", h.askDelete)
		r.Post("/frontends/{name}/delete/cancel", h.cancelDelete)
		r.Post("/frontends/{name}/delete/confirm", h.confirmDelete)

		r.Post("/form", h.submitForm)
		r.Post("/form/cancel", h.cancelForm)
		r.Post("/upload", h.upload)
		r.Post("/overlay/close", h.closeOverlay)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
