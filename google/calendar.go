package google

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/inference-gateway/voice-scheduling-agent/resolver"
)

// CalendarService represents the interface for interacting with Google Calendar API
//
//go:generate counterfeiter -generate
//counterfeiter:generate -o mocks . CalendarService
type CalendarService interface {
	CreateEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
}

// CalendarServiceImpl implements the calendar service interface for Google Calendar API
type CalendarServiceImpl struct {
	service *calendar.Service
	logger  *zap.Logger
}

// NewCalendarService creates a new Google Calendar service. No request is
// made until the first call.
func NewCalendarService(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (CalendarService, error) {
	scopesOption := option.WithScopes(resolver.Scopes...)

	allOptions := append([]option.ClientOption{scopesOption}, opts...)

	svc, err := calendar.NewService(ctx, allOptions...)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}
	return &CalendarServiceImpl{service: svc, logger: logger}, nil
}

// CreateEvent creates a new event in the calendar
func (g *CalendarServiceImpl) CreateEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	g.logger.Debug("creating event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "create-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventSummary", event.Summary),
		zap.String("eventStart", event.Start.DateTime))

	if g.logger.Core().Enabled(zap.DebugLevel) {
		eventJson, _ := json.Marshal(event)
		g.logger.Debug("google calendar api create event request",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "create-event"),
			zap.String("calendarID", calendarID),
			zap.String("requestJson", string(eventJson)))
	}

	createdEvent, err := g.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		g.logger.Error("failed to create event in google calendar api",
			zap.String("component", "google-calendar-service"),
			zap.String("operation", "create-event"),
			zap.String("calendarID", calendarID),
			zap.String("eventSummary", event.Summary),
			zap.Error(err))
		return nil, fmt.Errorf("unable to create event: %w", err)
	}

	g.logger.Info("successfully created event",
		zap.String("component", "google-calendar-service"),
		zap.String("operation", "create-event"),
		zap.String("calendarID", calendarID),
		zap.String("eventID", createdEvent.Id),
		zap.String("eventSummary", createdEvent.Summary))

	return createdEvent, nil
}
