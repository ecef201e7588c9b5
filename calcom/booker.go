package calcom

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
	"github.com/inference-gateway/voice-scheduling-agent/resolver"
)

// Source tags bookings made by this service
const Source = "voice-scheduling-agent"

// Booker books meetings against a single Cal.com event type
type Booker struct {
	client   *Client
	settings resolver.CalComSettings
	logger   *zap.Logger
}

// NewBooker creates a Cal.com booking provider
func NewBooker(client *Client, settings resolver.CalComSettings, logger *zap.Logger) *Booker {
	return &Booker{
		client:   client,
		settings: settings,
		logger:   logger,
	}
}

// Name returns the provider name
func (b *Booker) Name() string {
	return booking.ProviderCalCom
}

// Ready is always nil once the booker is built
func (b *Booker) Ready() error {
	return nil
}

// Book creates the booking and returns a pointer to it in the Cal.com dashboard
func (b *Booker) Book(ctx context.Context, req booking.Request, at booking.Instant) (string, error) {
	if !req.HasEmail() {
		return "", booking.ErrMissingAttendeeEmail
	}

	payload := BuildBookingRequest(req, at, b.settings)

	b.logger.Info("creating cal.com booking",
		zap.String("component", "calcom-booker"),
		zap.String("operation", "book"),
		zap.String("selector", string(b.settings.Selector.Kind)),
		zap.String("start", payload.Start))

	resp, err := b.client.CreateBooking(ctx, payload)
	if err != nil {
		return "", err
	}

	if resp.Data == nil || resp.Data.UID == "" {
		return "", fmt.Errorf("%w: cal.com booking created but uid missing in response", booking.ErrMalformedProviderResponse)
	}

	b.logger.Info("cal.com booking created",
		zap.String("component", "calcom-booker"),
		zap.String("operation", "book"),
		zap.String("uid", resp.Data.UID))

	return BookingLink(resp.Data.UID), nil
}

// BuildBookingRequest shapes the POST /bookings body
func BuildBookingRequest(req booking.Request, at booking.Instant, settings resolver.CalComSettings) BookingRequest {
	payload := BookingRequest{
		Start: at.ISOStart(),
		Attendee: Attendee{
			Name:     req.Name,
			Email:    req.Email,
			TimeZone: settings.AttendeeTimeZone,
		},
		Metadata: Metadata{
			Title:  req.Summary(),
			Source: Source,
		},
	}

	switch settings.Selector.Kind {
	case resolver.SelectorByID:
		payload.EventTypeID = settings.Selector.EventTypeID
	case resolver.SelectorBySlug:
		payload.EventTypeSlug = settings.Selector.Slug
		payload.Username = settings.Selector.Username
	}

	return payload
}

// BookingLink is the text handed back to the caller for a created booking
func BookingLink(uid string) string {
	return fmt.Sprintf("Cal.com booking UID: %s (view in dashboard: https://app.cal.com/bookings/%s)", uid, uid)
}
