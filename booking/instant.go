package booking

import (
	"time"
)

// MeetingDuration is the fixed length of every booked event
const MeetingDuration = 30 * time.Minute

// isoMillis matches the millisecond ISO-8601 form the providers expect
const isoMillis = "2006-01-02T15:04:05.000Z"

// Offset-less layouts are read as UTC. time.Parse accepts fractional
// seconds after the seconds field even when the layout omits them.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Instant is the resolved start of a meeting and its derived end
type Instant struct {
	Start time.Time
	End   time.Time
}

// Normalize combines date and time as date+"T"+time and parses the result
// into an absolute instant. No timezone is inferred: inputs without an offset
// are taken as UTC.
func Normalize(date, clock string) (Instant, error) {
	combined := date + "T" + clock

	for _, layout := range instantLayouts {
		start, err := time.Parse(layout, combined)
		if err != nil {
			continue
		}
		start = start.UTC()
		return Instant{
			Start: start,
			End:   start.Add(MeetingDuration),
		}, nil
	}

	return Instant{}, &InvalidDateTimeError{Date: date, Time: clock}
}

// ISOStart renders the start in UTC with millisecond precision
func (i Instant) ISOStart() string {
	return i.Start.UTC().Format(isoMillis)
}

// ISOEnd renders the end in UTC with millisecond precision
func (i Instant) ISOEnd() string {
	return i.End.UTC().Format(isoMillis)
}
