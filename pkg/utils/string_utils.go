package utils

import "strings"

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for optional payload fields that should be omitted when not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
