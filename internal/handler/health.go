package handler

import "net/http"

// HandleHealth обрабатывает GET /api/health: всегда 200 с пустым телом
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
