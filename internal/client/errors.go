// ABOUTME: Structured error type for API failures
// ABOUTME: Maps HTTP status codes to human-readable messages

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is the uniform failure value for every backend call
type APIError struct {
	Message string
	Status  int
	Fields  map[string][]string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// statusMessage is the fixed fallback table used when the error body
// carries no detail or message field
func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check your input."
	case http.StatusUnauthorized:
		return "Session expired. Please log in again."
	case http.StatusForbidden:
		return "You do not have permission to perform this action."
	case http.StatusNotFound:
		return "The requested resource was not found."
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	default:
		return "An unexpected error occurred."
	}
}

// errorBody is the shape the backend uses for error responses.
// detail takes precedence over message when both are present.
type errorBody struct {
	Detail  string              `json:"detail"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// decodeError builds an *APIError from a non-2xx response
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Message: statusMessage(resp.StatusCode),
		Status:  resp.StatusCode,
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}

	if body.Detail != "" {
		apiErr.Message = body.Detail
	} else if body.Message != "" {
		apiErr.Message = body.Message
	}
	apiErr.Fields = body.Errors

	return apiErr
}
