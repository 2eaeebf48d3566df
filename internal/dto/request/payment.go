package request

type CreatePaymentConversationRequest struct {
	UserID           string         `json:"user_id" validate:"required,uuid4"`
	BookingID        *string        `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	PaymentReference *string        `json:"payment_reference,omitempty" validate:"omitempty,max=50"`
	ConversationType string         `json:"conversation_type" validate:"required,oneof=payment_inquiry refund_request payment_issue"`
	AmountDiscussed  *string        `json:"amount_discussed,omitempty"`
	Currency         string         `json:"currency,omitempty" validate:"omitempty,len=3"`
	PaymentMethod    *string        `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	TransactionID    *string        `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
	ConversationData map[string]any `json:"conversation_data,omitempty"`
}
