package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes guarded by the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/tasks/add", h.addTask)
		r.Get("/api/tasks", h.getTasks)
		r.Put("/api/tasks/{id}", h.updateTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
