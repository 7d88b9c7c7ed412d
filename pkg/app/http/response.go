package http

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success body returned by every intake endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes data wrapped in a success Envelope.
func WriteJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}
