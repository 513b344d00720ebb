// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Circuit breaker errors.
var (
	// ErrCircuitBreakerOpen indicates the circuit breaker has tripped and requests are blocked.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// Inbound event errors.
var (
	// ErrMissingField indicates a required field is absent from an inbound event.
	ErrMissingField = errors.New("missing required field")

	// ErrEmptyText indicates a comment carries no text to process.
	ErrEmptyText = errors.New("empty comment text")
)

// Response and parsing errors.
var (
	// ErrEmptyResponse indicates an empty response was received.
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnexpectedStatus indicates a non-success HTTP status from an external API.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Provider errors.
var (
	// ErrNoProvidersAvailable indicates no LLM providers are registered.
	ErrNoProvidersAvailable = errors.New("no LLM providers available")

	// ErrAllProvidersFailed indicates every registered provider failed.
	ErrAllProvidersFailed = errors.New("all LLM providers failed")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
