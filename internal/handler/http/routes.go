package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	// the static path is compared literally in serveStatic, it is never
	// part of the route pattern
	if h.staticPath != "" {
		router.Handle("/{"+prefixParam+"}/{"+fileParam+"}", http.HandlerFunc(h.serveStatic))
	}

	// every other path and method gets the maintenance page
	router.Handle("/*", http.HandlerFunc(h.serveMaintenance))
	router.NotFound(h.serveMaintenance)
	router.MethodNotAllowed(h.serveMaintenance)

	return router
}
