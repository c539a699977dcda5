package httputil

import (
	"encoding/json"
	"net/http"
)

// FieldError names the offending field of a failed request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the uniform response body: every endpoint answers with a
// success flag plus data on the happy path or message/errors on failure.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// RespondData writes a success envelope carrying data.
func RespondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondMessage writes a success envelope carrying a message and data.
func RespondMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// RespondFailure writes a failure envelope with at least one field error.
func RespondFailure(w http.ResponseWriter, status int, message string, errs ...FieldError) {
	if len(errs) == 0 {
		errs = []FieldError{{Field: "server", Message: message}}
	}
	writeJSON(w, status, Envelope{Success: false, Message: message, Errors: errs})
}

// writeJSON marshals first so an encoding failure never produces a partial
// body after headers are sent.
func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	payload, err := json.Marshal(body)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
