package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Common error code constants shared with the backend's error envelope.
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

// FallbackErrorMessage is used when a failed response body carries nothing usable.
const FallbackErrorMessage = "Request failed. Please try again."

// APIError is the single normalized form of a backend failure. Every non-2xx
// response from the admin backend is converted into one of these before it
// leaves the transport layer.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Fields holds field-keyed validation messages when the backend returned
	// them, so forms can surface errors next to the offending input.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError instance.
func NewAPIError(statusCode int, code string, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// NormalizeAPIError converts a failed response into an APIError. The resource
// label (e.g. "Material") is used for the status-specific messages.
//
// Message precedence, which must stay stable because forms and toasts key off
// the exact strings:
//  1. 404 -> "<resource> not found"
//  2. 403 -> permission message
//  3. field-keyed validation messages joined as "field: msg1, msg2; field2: ..."
//  4. body "detail", then "message", then "error"
//  5. FallbackErrorMessage
func NormalizeAPIError(resource string, statusCode int, body []byte) *APIError {
	switch statusCode {
	case http.StatusNotFound:
		return &APIError{
			StatusCode: statusCode,
			Code:       ErrCodeNotFound,
			Message:    resource + " not found",
		}
	case http.StatusForbidden:
		return &APIError{
			StatusCode: statusCode,
			Code:       ErrCodeForbidden,
			Message:    "You do not have permission to perform this action on " + strings.ToLower(resource) + " records",
		}
	}

	apiErr := &APIError{StatusCode: statusCode, Code: codeForStatus(statusCode)}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		apiErr.Message = FallbackErrorMessage
		return apiErr
	}

	if fields := extractFieldErrors(payload); len(fields) > 0 {
		apiErr.Code = ErrCodeValidationFailed
		apiErr.Fields = fields
		apiErr.Message = joinFieldErrors(fields)
		return apiErr
	}

	for _, key := range []string{"detail", "message", "error"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	}

	apiErr.Message = FallbackErrorMessage
	return apiErr
}

// reservedErrorKeys are envelope keys that never count as field names.
var reservedErrorKeys = map[string]bool{
	"detail":  true,
	"message": true,
	"error":   true,
	"code":    true,
	"status":  true,
}

func extractFieldErrors(payload map[string]json.RawMessage) map[string][]string {
	fields := make(map[string][]string)
	for key, raw := range payload {
		if reservedErrorKeys[key] {
			continue
		}
		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
			fields[key] = msgs
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			fields[key] = []string{msg}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func joinFieldErrors(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys) // deterministic message for equal inputs

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(fields[key], ", ")))
	}
	return strings.Join(parts, "; ")
}

func codeForStatus(statusCode int) string {
	switch {
	case statusCode == http.StatusBadRequest:
		return ErrCodeBadRequest
	case statusCode == http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case statusCode == http.StatusConflict:
		return ErrCodeConflict
	case statusCode >= 500:
		return ErrCodeInternalServerError
	default:
		return ErrCodeBadRequest
	}
}

// AsAPIError unwraps err to an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a normalized 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
