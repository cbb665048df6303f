package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// SubmitQuery stores an inbound inquiry verbatim. The only validation is
// that a payload is present.
func (h *Handlers) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.QueryService.Submit(r.Context(), fields); err != nil {
		log.Printf("submit query: %v", err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessageResponse{Message: "Query submitted successfully"}, http.StatusOK)
}
