package ftc

import (
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError indicates the client was constructed without a
// required configuration value, or with one outside the supported set.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ftc: configuration value %q is missing or invalid", e.Field)
}

// MissingCredentialError indicates an empty username or API key was
// passed to CreateToken.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("ftc: credential %q is required", e.Name)
}

// MissingArgumentError indicates a required argument was empty or absent.
// It is returned before any request is built or sent.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("ftc: required argument %q is missing", e.Name)
}

// ConflictingOptionsError indicates two options that the API forbids
// combining were both supplied.
type ConflictingOptionsError struct {
	Option    string
	Conflicts []string
}

func (e *ConflictingOptionsError) Error() string {
	return fmt.Sprintf("ftc: option %q cannot be combined with %s",
		e.Option, strings.Join(e.Conflicts, " or "))
}

// MissingDependencyError indicates an option was supplied without another
// option the API requires alongside it.
type MissingDependencyError struct {
	Option   string
	Requires string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("ftc: option %q requires option %q", e.Option, e.Requires)
}

// MissingAnyOfError indicates none of a set of options was supplied when
// the API requires at least one.
type MissingAnyOfError struct {
	Options []string
}

func (e *MissingAnyOfError) Error() string {
	return fmt.Sprintf("ftc: at least one of %s must be provided",
		strings.Join(e.Options, ", "))
}

// APIError represents a non-2xx response from the FTC Events API.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ftc: API request failed: status %d: %s", e.StatusCode, e.Status)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error is a 401 or 403 response.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
