package api

import (
	"net/http"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, HealthResponse{
		Message: "AI Avatar Backend is running!",
		Status:  "healthy",
	})
}

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	writeJson(w, VoicesResponse{
		Voices:  h.voices.Names(),
		Default: h.voices.Default(),
	})
}
