package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Default envelope messages. The create and internal-error texts are part of
// the API contract and asserted by clients.
const (
	MsgCreated        = "Resource created successfully."
	MsgNotFound       = "Resource not found."
	MsgBadRequest     = "Bad request."
	MsgUnauthorized   = "Unauthorized."
	MsgInvalidPayload = "Request is incorrect format."
	MsgInternalError  = "Internal server error."
)

// Envelope is the uniform JSON wrapper returned by every endpoint. The
// Success flag lets callers branch without parsing HTTP status codes.
// Error (a single scalar) and Errors (a per-field map) are mutually
// exclusive; the builder functions below never set both.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK builds a success envelope carrying data.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKWithMessage builds a success envelope carrying data and a message.
func OKWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Created builds the success envelope for a freshly created resource.
func Created(data any) Envelope {
	return Envelope{Success: true, Data: data, Message: MsgCreated}
}

// ValidationFailed builds the failure envelope for a 422 response carrying
// the full per-field error map.
func ValidationFailed(errs map[string][]string) Envelope {
	return Envelope{Success: false, Message: MsgInvalidPayload, Errors: errs}
}

// NotFound builds the failure envelope for a 404 response.
func NotFound() Envelope {
	return Envelope{Success: false, Message: MsgNotFound}
}

// BadRequest builds the failure envelope for a 400 response.
func BadRequest(message string) Envelope {
	if message == "" {
		message = MsgBadRequest
	}
	return Envelope{Success: false, Message: message}
}

// Unauthorized builds the failure envelope for a 401 response.
func Unauthorized(message string) Envelope {
	if message == "" {
		message = MsgUnauthorized
	}
	return Envelope{Success: false, Message: message}
}

// InternalError builds the failure envelope for a 500 response. The cause
// is never surfaced to the caller; it belongs in the logs.
func InternalError() Envelope {
	return Envelope{Success: false, Message: MsgInternalError}
}

// RespondWithEnvelope writes the envelope as JSON with the given status
// code. A 204 response carries no body per RFC 9110; the envelope is
// dropped in that case.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondInternalError logs the underlying cause and writes the generic 500
// envelope. The raw error is never exposed to the client.
func RespondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("unhandled error while serving request",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method)
	RespondWithEnvelope(w, r, http.StatusInternalServerError, InternalError())
}
