package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedQuery signals a search token that cannot be decoded.
	ErrMalformedQuery = errors.New("malformed query")
	// ErrInvalidModel signals a search model that cannot be serialized.
	ErrInvalidModel = errors.New("invalid search model")
	// ErrProviderTimeout signals a suggestion provider that did not answer in time.
	ErrProviderTimeout = errors.New("suggestion provider timeout")
	// ErrCatalogUnavailable signals a failing equipment or user lookup.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrDuplicateProvider signals a second provider registered for the same type.
	ErrDuplicateProvider = errors.New("duplicate suggestion provider")
	// ErrMissingClientID signals a preference request without a client identity.
	ErrMissingClientID = errors.New("client id is required")
)

// MalformedQueryError wraps ErrMalformedQuery with the decoding stage that failed.
type MalformedQueryError struct {
	Reason string
	Err    error
}

func (e *MalformedQueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrMalformedQuery.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", ErrMalformedQuery.Error(), e.Reason, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *MalformedQueryError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedQuery}
	}
	return []error{ErrMalformedQuery, e.Err}
}

// NewMalformedQuery creates a malformed query error.
func NewMalformedQuery(reason string, err error) error {
	return &MalformedQueryError{Reason: reason, Err: err}
}
