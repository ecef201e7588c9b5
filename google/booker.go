package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
)

// Booker books meetings by inserting events into one Google calendar
type Booker struct {
	calendar   CalendarService
	calendarID string
	logger     *zap.Logger
}

// NewBooker creates a Google Calendar booking provider
func NewBooker(svc CalendarService, calendarID string, logger *zap.Logger) *Booker {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Booker{
		calendar:   svc,
		calendarID: calendarID,
		logger:     logger,
	}
}

// Name returns the provider name
func (b *Booker) Name() string {
	return booking.ProviderGoogle
}

// Ready is always nil once the booker is built
func (b *Booker) Ready() error {
	return nil
}

// CalendarID returns the target calendar
func (b *Booker) CalendarID() string {
	return b.calendarID
}

// Book inserts the event and returns its web link
func (b *Booker) Book(ctx context.Context, req booking.Request, at booking.Instant) (string, error) {
	event := BuildEvent(req, at)

	b.logger.Info("inserting event into google calendar",
		zap.String("component", "google-booker"),
		zap.String("operation", "book"),
		zap.String("calendarID", b.calendarID),
		zap.String("start", event.Start.DateTime))

	created, err := b.calendar.CreateEvent(ctx, b.calendarID, event)
	if err != nil {
		return "", b.translateError(err)
	}

	switch {
	case created == nil:
		return "", fmt.Errorf("%w: google calendar returned no event", booking.ErrMalformedProviderResponse)
	case created.HtmlLink != "":
		return created.HtmlLink, nil
	case created.Id != "":
		return fmt.Sprintf("Google Calendar event ID: %s", created.Id), nil
	default:
		return "", fmt.Errorf("%w: google calendar event has neither link nor id", booking.ErrMalformedProviderResponse)
	}
}

// BuildEvent shapes the calendar event for a booking. Start and end are
// always sent as UTC.
func BuildEvent(req booking.Request, at booking.Instant) *calendar.Event {
	attendees := []*calendar.EventAttendee{}
	if req.HasEmail() {
		attendees = append(attendees, &calendar.EventAttendee{Email: req.Email})
	}

	return &calendar.Event{
		Summary:     req.Summary(),
		Description: req.Description(),
		Start: &calendar.EventDateTime{
			DateTime: at.ISOStart(),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: at.ISOEnd(),
			TimeZone: "UTC",
		},
		Attendees: attendees,
	}
}

func (b *Booker) translateError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Code {
	case http.StatusNotFound:
		b.logger.Error("calendar not found",
			zap.String("component", "google-booker"),
			zap.String("calendarID", b.calendarID),
			zap.String("solution", "share the calendar with the service account email and check GOOGLE_CALENDAR_ID"))
	case http.StatusForbidden:
		b.logger.Error("insufficient access to calendar",
			zap.String("component", "google-booker"),
			zap.String("calendarID", b.calendarID),
			zap.String("solution", "grant the service account 'Make changes to events' on the calendar"))
	}

	return &booking.ProviderError{
		Provider: booking.ProviderGoogle,
		Status:   apiErr.Code,
		Message:  apiErr.Message,
	}
}
