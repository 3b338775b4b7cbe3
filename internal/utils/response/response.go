// Package response provides helpers for writing the JSON envelope every
// handler returns.
//
// A success looks like {"data": ...} or {} when there is no payload.
// An error looks like:
//
//	{ "errorCode": "ENTITY_NOT_FOUND", "message": "Entity not found" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope. Exactly one of Data or ErrorCode/Message is
// set; empty fields are left out of the JSON.
type Response struct {
	Data      any       `json:"data,omitempty"`
	ErrorCode ErrorCode `json:"errorCode,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// ErrorCode is the symbolic name of an error carried in the envelope.
type ErrorCode string

const (
	EntityFound    ErrorCode = "ENTITY_FOUND"
	EntityNotFound ErrorCode = "ENTITY_NOT_FOUND"
	BadRequest     ErrorCode = "BAD_REQUEST"
	InternalError  ErrorCode = "INTERNAL_ERROR"
)

// HTTPStatus returns the status code an error code is sent with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case EntityFound, BadRequest:
		return http.StatusBadRequest
	case EntityNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the fixed human-readable text for the code.
func (c ErrorCode) Message() string {
	switch c {
	case EntityFound:
		return "Entity already exists"
	case EntityNotFound:
		return "Entity not found"
	case BadRequest:
		return "Bad request"
	default:
		return "Internal server error"
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// SuccessNoData is the empty success envelope, encoded as {}.
func SuccessNoData() Response {
	return Response{}
}

// SuccessWithData wraps a payload.
func SuccessWithData(data any) Response {
	return Response{Data: data}
}

// Error builds the envelope for code with its fixed message.
func Error(code ErrorCode) Response {
	return Response{ErrorCode: code, Message: code.Message()}
}

// WriteError writes Error(code) with the code's status.
func WriteError(w http.ResponseWriter, code ErrorCode) error {
	return WriteJSON(w, code.HTTPStatus(), Error(code))
}

// GeneralError reports a malformed request; the message carries err's
// text. Use it for decode errors, never for storage failures.
func GeneralError(err error) Response {
	return Response{ErrorCode: BadRequest, Message: err.Error()}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a slice of validator.FieldError values into
// a single human-readable BAD_REQUEST envelope.
//
// Example output:
//
//	{ "errorCode": "BAD_REQUEST", "message": "field ID is required" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		ErrorCode: BadRequest,
		Message:   strings.Join(errMessages, ", "),
	}
}
