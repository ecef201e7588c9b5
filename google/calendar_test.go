package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

func newTestService(t *testing.T, handler http.HandlerFunc) CalendarService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewCalendarService(context.Background(), zaptest.NewLogger(t),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return svc
}

func TestCalendarService_CreateEvent(t *testing.T) {
	var received calendar.Event
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/calendars/team@example.com/events"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "evt-123",
			"summary":  received.Summary,
			"htmlLink": "https://calendar.google.com/event?eid=evt-123",
		})
	})

	created, err := svc.CreateEvent(context.Background(), "team@example.com", &calendar.Event{
		Summary: "Meeting with Alex",
		Start:   &calendar.EventDateTime{DateTime: "2024-03-01T14:00:00.000Z", TimeZone: "UTC"},
		End:     &calendar.EventDateTime{DateTime: "2024-03-01T14:30:00.000Z", TimeZone: "UTC"},
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-123", created.Id)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt-123", created.HtmlLink)
	assert.Equal(t, "Meeting with Alex", received.Summary)
	assert.Equal(t, "UTC", received.Start.TimeZone)
}

func TestCalendarService_CreateEvent_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
	})

	_, err := svc.CreateEvent(context.Background(), "missing@example.com", &calendar.Event{
		Summary: "Meeting with Alex",
		Start:   &calendar.EventDateTime{DateTime: "2024-03-01T14:00:00.000Z"},
		End:     &calendar.EventDateTime{DateTime: "2024-03-01T14:30:00.000Z"},
	})
	require.Error(t, err)

	var apiErr *googleapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}
