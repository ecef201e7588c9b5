package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ValidInputs(t *testing.T) {
	testCases := []struct {
		name          string
		date          string
		time          string
		expectedStart time.Time
	}{
		{
			name:          "hours and minutes",
			date:          "2024-03-01",
			time:          "14:00",
			expectedStart: time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name:          "with seconds",
			date:          "2024-03-01",
			time:          "09:15:30",
			expectedStart: time.Date(2024, 3, 1, 9, 15, 30, 0, time.UTC),
		},
		{
			name:          "fractional seconds",
			date:          "2024-03-01",
			time:          "09:15:30.250",
			expectedStart: time.Date(2024, 3, 1, 9, 15, 30, 250_000_000, time.UTC),
		},
		{
			name:          "explicit utc",
			date:          "2024-12-31",
			time:          "23:45:00Z",
			expectedStart: time.Date(2024, 12, 31, 23, 45, 0, 0, time.UTC),
		},
		{
			name:          "explicit offset is converted to utc",
			date:          "2024-03-01",
			time:          "14:00:00+05:30",
			expectedStart: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:          "minutes with offset",
			date:          "2024-03-01",
			time:          "14:00-02:00",
			expectedStart: time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			name:          "leap day",
			date:          "2024-02-29",
			time:          "10:00",
			expectedStart: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			instant, err := Normalize(tc.date, tc.time)
			require.NoError(t, err)
			assert.True(t, tc.expectedStart.Equal(instant.Start), "start %s != %s", instant.Start, tc.expectedStart)
			assert.Equal(t, time.UTC, instant.Start.Location())
			assert.Equal(t, 30*time.Minute, instant.End.Sub(instant.Start))
			assert.True(t, instant.Start.Before(instant.End))
		})
	}
}

func TestNormalize_EndIsAlwaysThirtyMinutesAfterStart(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24*60; i += 7 {
		start := base.Add(time.Duration(i) * time.Minute).AddDate(0, 0, i%365)
		instant, err := Normalize(start.Format("2006-01-02"), start.Format("15:04"))
		require.NoError(t, err)
		require.True(t, start.Equal(instant.Start))
		require.True(t, start.Add(MeetingDuration).Equal(instant.End))
	}
}

func TestNormalize_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name string
		date string
		time string
	}{
		{name: "not a time", date: "2024-03-01", time: "not-a-time"},
		{name: "twelve hour clock", date: "2024-03-01", time: "2:30 PM"},
		{name: "empty time", date: "2024-03-01", time: ""},
		{name: "empty date", date: "", time: "14:00"},
		{name: "both empty", date: "", time: ""},
		{name: "natural language date", date: "tomorrow", time: "14:00"},
		{name: "slashed date", date: "03/01/2024", time: "14:00"},
		{name: "hour out of range", date: "2024-03-01", time: "25:00"},
		{name: "day out of range", date: "2024-02-30", time: "10:00"},
		{name: "month out of range", date: "2024-13-01", time: "10:00"},
		{name: "date already carries time", date: "2024-03-01T10:00", time: "10:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			instant, err := Normalize(tc.date, tc.time)
			require.Error(t, err)
			assert.Equal(t, Instant{}, instant)

			var dateErr *InvalidDateTimeError
			require.True(t, errors.As(err, &dateErr))
			assert.Equal(t, tc.date, dateErr.Date)
			assert.Equal(t, tc.time, dateErr.Time)
			assert.Equal(t, msgInvalidDateTime, UserMessage(err))
		})
	}
}

func TestInstant_ISOFormatting(t *testing.T) {
	instant, err := Normalize("2024-03-01", "14:00")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01T14:00:00.000Z", instant.ISOStart())
	assert.Equal(t, "2024-03-01T14:30:00.000Z", instant.ISOEnd())
}
