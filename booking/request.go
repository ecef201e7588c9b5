package booking

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is one create_calendar_event invocation after decoding its arguments
type Request struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
}

// ParseRequest converts decoded tool-call arguments into a Request. Fields of
// the wrong JSON type are rejected rather than coerced.
func ParseRequest(args map[string]any) (Request, error) {
	var req Request
	if args == nil {
		return req, fmt.Errorf("%w: arguments are empty", ErrInvalidArguments)
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Title = strings.TrimSpace(req.Title)
	req.Email = strings.TrimSpace(req.Email)

	return req, nil
}

// Summary returns the event title, defaulting to "Meeting with {name}"
func (r Request) Summary() string {
	if r.Title != "" {
		return r.Title
	}
	return fmt.Sprintf("Meeting with %s", r.Name)
}

// Description returns the generated event description
func (r Request) Description() string {
	return fmt.Sprintf("Scheduled via Voice Agent for %s.", r.Name)
}

// HasEmail reports whether an attendee email was supplied
func (r Request) HasEmail() bool {
	return r.Email != ""
}
