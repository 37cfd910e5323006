// Package handler provides HTTP request handlers for UserHub.
package handler

import "net/http"

// handlePing answers liveness probes with an empty object, any method.
func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, nil)
}

// handleHello greets the caller.
func (h *Handler) handleHello(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "hello friend!",
	})
}
