package request

type CreateSessionRequest struct {
	// UserID is only honored for unauthenticated widget sessions; a valid
	// bearer token always wins.
	UserID           string         `json:"user_id,omitempty" validate:"omitempty,uuid4"`
	SessionType      string         `json:"session_type,omitempty" validate:"omitempty,oneof=general booking support complaint"`
	Priority         string         `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	BookingReference *string        `json:"booking_reference,omitempty" validate:"omitempty,max=30"`
	UserInfo         map[string]any `json:"user_info,omitempty"`
}

type PostMessageRequest struct {
	MessageText       string            `json:"message_text" validate:"required,max=4000"`
	MessageType       string            `json:"message_type,omitempty" validate:"omitempty,oneof=text image file quick_reply carousel"`
	SenderType        string            `json:"sender_type,omitempty" validate:"omitempty,oneof=user bot agent"`
	EntitiesExtracted map[string]string `json:"entities_extracted,omitempty"`
}

type CloseSessionRequest struct {
	Satisfaction *int    `json:"satisfaction,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback     *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}
