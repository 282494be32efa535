package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"clara-backend/internal/handlers"
	"clara-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	geofenceHandler *handlers.GeofenceHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)

	// Liveness
	r.Get("/", handlers.Root)

	r.Post("/chat", chatHandler.Chat)
	r.Post("/geofence", geofenceHandler.Report)

	return r
}
