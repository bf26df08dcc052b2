// Package error encodes API errors in a single JSON shape.
package error

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func New(code ErrorCode, message, errorID string) Error {
	return Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: errorID,
	}
}

// EncodeError writes the error as the response body with the status
// mapped from the code. errorID is the request id so clients can quote
// it back when reporting a failure.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	apiErr := New(code, message, errorID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	return json.NewEncoder(w).Encode(apiErr)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}
