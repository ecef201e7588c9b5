package calcom

// Attendee is the person the booking is made for
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone"`
}

// Metadata is free-form booking metadata stored by Cal.com
type Metadata struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// BookingRequest is the body of POST /bookings. Either EventTypeID or
// EventTypeSlug with Username is set.
type BookingRequest struct {
	Start         string   `json:"start"`
	Attendee      Attendee `json:"attendee"`
	EventTypeID   int64    `json:"eventTypeId,omitempty"`
	EventTypeSlug string   `json:"eventTypeSlug,omitempty"`
	Username      string   `json:"username,omitempty"`
	Metadata      Metadata `json:"metadata"`
}

// BookingResponse is the subset of the POST /bookings response we read
type BookingResponse struct {
	Status string       `json:"status"`
	Data   *BookingData `json:"data"`
}

// BookingData identifies the created booking
type BookingData struct {
	ID  int64  `json:"id"`
	UID string `json:"uid"`
}
