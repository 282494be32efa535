package handlers

import (
	"net/http"

	"clara-backend/internal/models"
)

const rootMessage = "Hello from Saryus!"

// Root is the liveness check.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: rootMessage})
}
