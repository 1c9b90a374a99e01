// Package models defines the wire types exchanged with the shelter platform
// backend: the uniform response envelope, paginated listings, and the domain
// DTOs the portal renders.
package models

import (
	"fmt"
	"strings"
)

// ErrorDescriptor is a single business-rule failure reported by the backend.
type ErrorDescriptor struct {
	ErrorMessage string `json:"errorMessage"`
	Code         string `json:"code,omitempty"`
}

// Result carries the success payload of an envelope.
type Result[T any] struct {
	IsSuccess bool `json:"isSuccess"`
	Value     T    `json:"value"`
}

// Envelope is the backend's uniform response wrapper. Exactly one of
// Result-with-value or a non-empty Errors list is populated per response;
// callers must check the envelope, not the HTTP status, to tell success
// from failure.
type Envelope[T any] struct {
	Result *Result[T]        `json:"result"`
	Errors []ErrorDescriptor `json:"errors"`
}

// Unwrap returns the payload of a success envelope, or an *APIError built
// from the error descriptors. A response violating the exactly-one-of
// invariant is reported as an *APIError as well.
func (e Envelope[T]) Unwrap() (T, error) {
	var zero T

	if e.Result == nil {
		if len(e.Errors) == 0 {
			return zero, &APIError{Errors: []ErrorDescriptor{{ErrorMessage: "malformed response: neither result nor errors"}}}
		}
		return zero, &APIError{Errors: e.Errors}
	}
	if len(e.Errors) > 0 {
		return zero, &APIError{Errors: e.Errors}
	}
	if !e.Result.IsSuccess {
		return zero, &APIError{Errors: []ErrorDescriptor{{ErrorMessage: "operation was not successful"}}}
	}
	return e.Result.Value, nil
}

// APIError is a business-rule failure: the HTTP exchange completed but the
// envelope carried error descriptors instead of a value.
type APIError struct {
	Status int
	Errors []ErrorDescriptor
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		msgs = append(msgs, d.ErrorMessage)
	}
	return strings.Join(msgs, "; ")
}
