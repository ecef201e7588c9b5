package skills

import (
	"context"
	"sort"
	"time"

	server "github.com/inference-gateway/adk/server"
	zap "go.uber.org/zap"

	booking "github.com/inference-gateway/voice-scheduling-agent/booking"
)

// CreateCalendarEventName is the function name the voice agent calls
const CreateCalendarEventName = "create_calendar_event"

// CreateCalendarEventSkill struct holds the skill with dependencies
type CreateCalendarEventSkill struct {
	logger   *zap.Logger
	provider booking.Provider
	timeout  time.Duration
}

// NewCreateCalendarEventSkill creates a new create_calendar_event skill
func NewCreateCalendarEventSkill(logger *zap.Logger, provider booking.Provider, timeout time.Duration) server.Tool {
	skill := &CreateCalendarEventSkill{
		logger:   logger,
		provider: provider,
		timeout:  timeout,
	}
	return server.NewBasicTool(
		CreateCalendarEventName,
		"Book a 30 minute meeting on the configured calendar",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"description": "Name of the person the meeting is with (required)",
					"type":        "string",
				},
				"date": map[string]any{
					"description": "Meeting date in YYYY-MM-DD format (required)",
					"type":        "string",
				},
				"time": map[string]any{
					"description": "Meeting start time, e.g. 14:00 or 14:00:00+05:30 (required)",
					"type":        "string",
				},
				"title": map[string]any{
					"description": "Meeting title. Optional, defaults to \"Meeting with {name}\".",
					"type":        "string",
				},
				"email": map[string]any{
					"description": "Attendee email address. Required for Cal.com bookings.",
					"type":        "string",
				},
			},
			"required": []string{"name", "date", "time"},
		},
		skill.CreateCalendarEventHandler,
	)
}

// CreateCalendarEventHandler books the meeting. Failures are returned as the
// speakable result string, never as an error, so one bad call cannot fail a batch.
func (s *CreateCalendarEventSkill) CreateCalendarEventHandler(ctx context.Context, args map[string]any) (string, error) {
	s.logger.Debug("creating calendar event",
		zap.String("component", "create-calendar-event-skill"),
		zap.Strings("argumentFields", argumentFields(args)))

	req, err := booking.ParseRequest(args)
	if err != nil {
		return s.failure("parse-arguments", err), nil
	}

	if err := s.provider.Ready(); err != nil {
		return s.failure("provider-ready", err), nil
	}

	at, err := booking.Normalize(req.Date, req.Time)
	if err != nil {
		return s.failure("normalize", err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	link, err := s.provider.Book(ctx, req, at)
	if err != nil {
		return s.failure("book", err), nil
	}

	s.logger.Info("calendar event created successfully",
		zap.String("component", "create-calendar-event-skill"),
		zap.String("provider", s.provider.Name()),
		zap.String("start", at.ISOStart()))

	return booking.SuccessMessage(link), nil
}

func (s *CreateCalendarEventSkill) failure(stage string, err error) string {
	fields := []zap.Field{
		zap.String("component", "create-calendar-event-skill"),
		zap.String("operation", stage),
		zap.String("provider", s.provider.Name()),
		zap.Error(err),
	}
	if booking.IsConfigError(err) {
		s.logger.Warn("calendar provider is not configured", fields...)
	} else {
		s.logger.Error("failed to create calendar event", fields...)
	}
	return booking.ErrorResult(err)
}

func argumentFields(args map[string]any) []string {
	fields := make([]string, 0, len(args))
	for k := range args {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
