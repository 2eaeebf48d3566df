package entity

// Typed shapes for the JSONB blob columns. Each blob is stored and retrieved
// as a single serialized unit; a NULL column always deserializes to the empty
// value, never to a nil that callers have to guard against.

// TravelDates is the bookings.travel_dates blob
type TravelDates struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GroupSize is the packages.group_size blob
type GroupSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Availability is the packages.availability blob
type Availability struct {
	Available bool   `json:"available"`
	NextDate  string `json:"next_date,omitempty"`
}

// SessionMetadata is the chat_sessions.session_metadata blob, capturing the
// originating client
type SessionMetadata struct {
	Browser   string `json:"browser"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// MessageMetadata is the chat_messages.metadata blob. User messages carry the
// extracted entities; bot messages carry the detected intent.
type MessageMetadata struct {
	AutoResponse bool              `json:"auto_response,omitempty"`
	Intent       string            `json:"intent,omitempty"`
	Entities     map[string]string `json:"entities,omitempty"`
}

// UserInfo is the free-form customer/user info blob on sessions and tickets
type UserInfo map[string]any
