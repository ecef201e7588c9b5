package booking

import (
	"errors"
	"fmt"
)

const (
	ProviderGoogle = "google"
	ProviderCalCom = "cal.com"
)

var (
	// ErrNoProviderConfigured is returned when neither Cal.com nor Google credentials are configured
	ErrNoProviderConfigured = errors.New("no calendar provider configured: set CAL_API_KEY (+ CAL_EVENT_TYPE_ID or CAL_USERNAME/CAL_EVENT_TYPE_SLUG) for Cal.com, or GOOGLE_CREDENTIALS_JSON / GOOGLE_CLIENT_EMAIL + GOOGLE_PRIVATE_KEY / GOOGLE_APPLICATION_CREDENTIALS for Google Calendar")

	// ErrMissingAttendeeEmail is returned by providers that cannot book without an attendee email
	ErrMissingAttendeeEmail = errors.New("missing attendee email (required for Cal.com bookings)")

	// ErrInvalidArguments is returned when tool-call arguments cannot be decoded into a Request
	ErrInvalidArguments = errors.New("invalid tool call arguments")

	// ErrMalformedProviderResponse is returned when a provider reports success without the data we need
	ErrMalformedProviderResponse = errors.New("malformed provider response")
)

// MissingProviderConfigError means a provider was selected but is incompletely configured
type MissingProviderConfigError struct {
	Provider string
	Detail   string
}

func (e *MissingProviderConfigError) Error() string {
	return e.Detail
}

// AuthInitError means credential material is present but unusable
type AuthInitError struct {
	Strategy string
	Err      error
}

func (e *AuthInitError) Error() string {
	return fmt.Sprintf("google auth initialization failed (%s): %v", e.Strategy, e.Err)
}

func (e *AuthInitError) Unwrap() error {
	return e.Err
}

// InvalidDateTimeError carries the original inputs that failed to parse
type InvalidDateTimeError struct {
	Date string
	Time string
}

func (e *InvalidDateTimeError) Error() string {
	return fmt.Sprintf("Invalid date/time format: %s %s", e.Date, e.Time)
}

// ProviderError is a failed call against a provider API
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	switch e.Provider {
	case ProviderCalCom:
		return fmt.Sprintf("Cal.com booking failed (%d): %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("%s calendar request failed (%d): %s", e.Provider, e.Status, e.Message)
	}
}

// IsConfigError reports whether err stems from provider configuration rather
// than from a single request
func IsConfigError(err error) bool {
	var missing *MissingProviderConfigError
	var auth *AuthInitError
	return errors.Is(err, ErrNoProviderConfigured) || errors.As(err, &missing) || errors.As(err, &auth)
}
