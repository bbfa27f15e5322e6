// ABOUTME: Custom error types for the news client and proxy
// ABOUTME: Resolves provider failures into a small set of kinds and one user-facing message

package errors

import (
	"errors"
	"fmt"
)

// GenericMessage is surfaced when no more specific message is available
const GenericMessage = "Something went wrong"

// MissingCredentialError is returned when the server holds no key for a provider
type MissingCredentialError struct {
	Provider string
}

// Error implements the error interface
func (e *MissingCredentialError) Error() string {
	if e.Provider == "GNews" {
		return "Missing GNews API key"
	}
	return fmt.Sprintf("Missing %s key", e.Provider)
}

// UpstreamError represents a non-2xx response from a news provider
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s error %d", e.Provider, e.StatusCode)
}

// ProviderKeyInvalidError signals that a provider rejected its key.
// It never reaches the reader; the orchestrator falls back instead.
type ProviderKeyInvalidError struct {
	Provider   string
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e *ProviderKeyInvalidError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s key rejected (%d): %s", e.Provider, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s key rejected (%d)", e.Provider, e.StatusCode)
}

// NetworkError wraps transport-level failures and undecodable responses
type NetworkError struct {
	Provider string
	Cause    error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Cause == nil {
		return GenericMessage
	}
	return e.Cause.Error()
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsMissingCredential checks if an error is a MissingCredentialError
func IsMissingCredential(err error) bool {
	var target *MissingCredentialError
	return errors.As(err, &target)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// IsProviderKeyInvalid checks if an error is a ProviderKeyInvalidError
func IsProviderKeyInvalid(err error) bool {
	var target *ProviderKeyInvalidError
	return errors.As(err, &target)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// UserMessage resolves err into the single message shown to the reader
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Error()
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericMessage
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
