package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "Error interno del servidor"

// ErrorResponse is the single-message error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the multi-message error body used by form validation.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON writes payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError writes a single-message error body.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondErrors writes the multi-message error body.
func RespondErrors(w http.ResponseWriter, status int, messages []string) {
	RespondJSON(w, status, ErrorsResponse{Errors: messages})
}

// RespondBusinessMessages forwards a backend rejection preserving its shape:
// a single message keeps the {error} body, several keep {errors}.
func RespondBusinessMessages(w http.ResponseWriter, status int, messages []string) {
	switch len(messages) {
	case 0:
		RespondError(w, status, msgInternalError)
	case 1:
		RespondError(w, status, messages[0])
	default:
		RespondErrors(w, status, messages)
	}
}

// RespondBadRequest writes a 400 with the given message.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized writes a 401 with the given message.
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden writes a 403 with the given message.
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound writes a 404 with the given message.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict writes a 409 with the given message.
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondBadGateway writes a 502 with the given message.
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

// RespondInternalError writes a generic 500.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
