package handler

import (
	"net/http"
)

// Health reports liveness; readiness is implied by a working db connection at
// startup.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
