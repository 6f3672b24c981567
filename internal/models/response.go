package models

import "strings"

// DefaultErrorMessage is used when a failure carries no message of its own
const DefaultErrorMessage = "An unexpected error occurred"

// APIResponse is the envelope every gateway response and every dashboard
// request resolves to
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewSuccess wraps data in a successful envelope
func NewSuccess[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    &data,
		Message: message,
	}
}

// NewFailure builds a failed envelope. An empty message is replaced so that a
// failed envelope always carries a readable error.
func NewFailure[T any](errMsg string) APIResponse[T] {
	if strings.TrimSpace(errMsg) == "" {
		errMsg = DefaultErrorMessage
	}
	return APIResponse[T]{
		Success: false,
		Error:   errMsg,
	}
}

// Valid reports whether the envelope honours the success/error invariant
func (r APIResponse[T]) Valid() bool {
	if r.Success {
		return r.Error == ""
	}
	return r.Data == nil && strings.TrimSpace(r.Error) != ""
}
