package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	msgGenericTrouble   = "I had trouble accessing the calendar. Please check the backend logs."
	msgNoProvider       = "No calendar provider is configured on the backend. Configure Cal.com or Google Calendar and try again."
	msgInvalidDateTime  = "I couldn't understand the date or time format provided."
	msgMissingEmail     = "I need the attendee's email address to book this meeting."
	msgInvalidArguments = "I couldn't read the meeting details that were sent."
	msgCalendarNotFound = "I couldn't find the calendar. Please ensure the Calendar ID is correct and shared with the service account."
	msgNoPermission     = "I don't have permission to edit this calendar. Please check the sharing settings."
	msgCalComKey        = "Cal.com API key rejected (401 Unauthorized). Generate a new Cal.com API key and set CAL_API_KEY."
	msgProviderTimeout  = "The calendar took too long to respond. Please try again in a moment."
	msgAuthInit         = "The calendar credentials on the backend could not be loaded. Please check the backend logs."
)

// SuccessMessage is the tool result for a completed booking
func SuccessMessage(link string) string {
	return fmt.Sprintf("Success! The meeting has been scheduled on the calendar. Event link: %s", link)
}

// ErrorResult is the tool result for a failed booking
func ErrorResult(err error) string {
	return "Error: " + UserMessage(err)
}

// FunctionNotFound is the tool result for an unrecognized function name
func FunctionNotFound(name string) string {
	return fmt.Sprintf("Function %s not found.", name)
}

// UserMessage maps an error to a short sentence the voice agent can speak.
// Messages never include credential material.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		missing  *MissingProviderConfigError
		authErr  *AuthInitError
		dateErr  *InvalidDateTimeError
		provider *ProviderError
	)

	switch {
	case errors.Is(err, ErrNoProviderConfigured):
		return msgNoProvider
	case errors.As(err, &missing):
		return missing.Detail
	case errors.As(err, &authErr):
		return msgAuthInit
	case errors.As(err, &dateErr):
		return msgInvalidDateTime
	case errors.Is(err, ErrMissingAttendeeEmail):
		return msgMissingEmail
	case errors.Is(err, ErrInvalidArguments):
		return msgInvalidArguments
	case errors.Is(err, context.DeadlineExceeded):
		return msgProviderTimeout
	case errors.As(err, &provider):
		return providerMessage(provider)
	default:
		return msgGenericTrouble
	}
}

func providerMessage(e *ProviderError) string {
	switch e.Provider {
	case ProviderGoogle:
		switch e.Status {
		case http.StatusNotFound:
			return msgCalendarNotFound
		case http.StatusForbidden:
			return msgNoPermission
		}
	case ProviderCalCom:
		if e.Status == http.StatusUnauthorized || strings.Contains(strings.ToLower(e.Message), "invalid api key") {
			return msgCalComKey
		}
		return e.Error()
	}
	return msgGenericTrouble
}
