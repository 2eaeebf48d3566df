package request

type CreateTicketRequest struct {
	UserID           string         `json:"user_id" validate:"required,uuid4"`
	ChatSessionID    *string        `json:"chat_session_id,omitempty" validate:"omitempty,max=40"`
	Category         string         `json:"category" validate:"required,oneof=booking payment technical general complaint"`
	Subcategory      *string        `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Subject          string         `json:"subject" validate:"required,max=200"`
	Description      string         `json:"description" validate:"required,max=4000"`
	Priority         string         `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	BookingReference *string        `json:"booking_reference,omitempty" validate:"omitempty,max=30"`
	CustomerInfo     map[string]any `json:"customer_info,omitempty"`
}

// CreateTicketFromSessionRequest omits the user; the session record names its
// owner.
type CreateTicketFromSessionRequest struct {
	Category    string  `json:"category" validate:"required,oneof=booking payment technical general complaint"`
	Subject     string  `json:"subject" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=4000"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Subcategory *string `json:"subcategory,omitempty" validate:"omitempty,max=100"`
}
