package google_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
	"github.com/inference-gateway/voice-scheduling-agent/google"
	"github.com/inference-gateway/voice-scheduling-agent/google/mocks"
)

func mustInstant(t *testing.T, date, clock string) booking.Instant {
	t.Helper()
	at, err := booking.Normalize(date, clock)
	require.NoError(t, err)
	return at
}

func TestBuildEvent(t *testing.T) {
	at := mustInstant(t, "2024-03-01", "14:00")

	testCases := []struct {
		name              string
		req               booking.Request
		expectedSummary   string
		expectedAttendees []string
	}{
		{
			name:              "default_title_with_email",
			req:               booking.Request{Name: "Alex", Email: "alex@example.com"},
			expectedSummary:   "Meeting with Alex",
			expectedAttendees: []string{"alex@example.com"},
		},
		{
			name:              "explicit_title_without_email",
			req:               booking.Request{Name: "Sam", Title: "Design review"},
			expectedSummary:   "Design review",
			expectedAttendees: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := google.BuildEvent(tc.req, at)

			assert.Equal(t, tc.expectedSummary, event.Summary)
			assert.Equal(t, "Scheduled via Voice Agent for "+tc.req.Name+".", event.Description)
			assert.Equal(t, "2024-03-01T14:00:00.000Z", event.Start.DateTime)
			assert.Equal(t, "2024-03-01T14:30:00.000Z", event.End.DateTime)
			assert.Equal(t, "UTC", event.Start.TimeZone)
			assert.Equal(t, "UTC", event.End.TimeZone)

			emails := []string{}
			for _, a := range event.Attendees {
				emails = append(emails, a.Email)
			}
			assert.Equal(t, tc.expectedAttendees, emails)
		})
	}
}

func TestBooker_Book_Success(t *testing.T) {
	fake := &mocks.FakeCalendarService{}
	fake.CreateEventReturns(&calendar.Event{Id: "evt-1", HtmlLink: "https://calendar.google.com/event?eid=evt-1"}, nil)

	booker := google.NewBooker(fake, "team@example.com", zaptest.NewLogger(t))
	assert.Equal(t, booking.ProviderGoogle, booker.Name())

	link, err := booker.Book(context.Background(), booking.Request{Name: "Alex"}, mustInstant(t, "2024-03-01", "14:00"))
	require.NoError(t, err)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt-1", link)

	require.Equal(t, 1, fake.CreateEventCallCount())
	_, calendarID, event := fake.CreateEventArgsForCall(0)
	assert.Equal(t, "team@example.com", calendarID)
	assert.Equal(t, "Meeting with Alex", event.Summary)
}

func TestBooker_DefaultCalendarID(t *testing.T) {
	booker := google.NewBooker(&mocks.FakeCalendarService{}, "", zaptest.NewLogger(t))
	assert.Equal(t, "primary", booker.CalendarID())
}

func TestBooker_Book_ResponseWithoutLink(t *testing.T) {
	testCases := []struct {
		name        string
		event       *calendar.Event
		expected    string
		expectedErr error
	}{
		{name: "id_only", event: &calendar.Event{Id: "evt-2"}, expected: "Google Calendar event ID: evt-2"},
		{name: "empty_event", event: &calendar.Event{}, expectedErr: booking.ErrMalformedProviderResponse},
		{name: "nil_event", event: nil, expectedErr: booking.ErrMalformedProviderResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &mocks.FakeCalendarService{}
			fake.CreateEventReturns(tc.event, nil)
			booker := google.NewBooker(fake, "primary", zaptest.NewLogger(t))

			link, err := booker.Book(context.Background(), booking.Request{Name: "Alex"}, mustInstant(t, "2024-03-01", "14:00"))
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, link)
		})
	}
}

func TestBooker_Book_TranslatesAPIErrors(t *testing.T) {
	testCases := []struct {
		name            string
		apiErr          error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "calendar_not_found",
			apiErr:          &googleapi.Error{Code: http.StatusNotFound, Message: "Not Found"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "I couldn't find the calendar. Please ensure the Calendar ID is correct and shared with the service account.",
		},
		{
			name:            "permission_denied",
			apiErr:          &googleapi.Error{Code: http.StatusForbidden, Message: "Forbidden"},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: booking.UserMessage(&booking.ProviderError{Provider: booking.ProviderGoogle, Status: http.StatusForbidden}),
		},
		{
			name:            "server_error",
			apiErr:          &googleapi.Error{Code: http.StatusInternalServerError, Message: "backend"},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "I had trouble accessing the calendar. Please check the backend logs.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &mocks.FakeCalendarService{}
			fake.CreateEventReturns(nil, tc.apiErr)
			booker := google.NewBooker(fake, "primary", zaptest.NewLogger(t))

			_, err := booker.Book(context.Background(), booking.Request{Name: "Alex"}, mustInstant(t, "2024-03-01", "14:00"))
			require.Error(t, err)

			var providerErr *booking.ProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, booking.ProviderGoogle, providerErr.Provider)
			assert.Equal(t, tc.expectedStatus, providerErr.Status)
			assert.Equal(t, tc.expectedMessage, booking.UserMessage(err))
		})
	}
}

func TestBooker_Book_PassesThroughOtherErrors(t *testing.T) {
	fake := &mocks.FakeCalendarService{}
	fake.CreateEventReturns(nil, context.DeadlineExceeded)
	booker := google.NewBooker(fake, "primary", zaptest.NewLogger(t))

	_, err := booker.Book(context.Background(), booking.Request{Name: "Alex"}, mustInstant(t, "2024-03-01", "14:00"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
