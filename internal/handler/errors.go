package handlers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the wire shape of every plain status body.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeError sends a JSON error body with the given status
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

// writeJSON sends a successful JSON response
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
