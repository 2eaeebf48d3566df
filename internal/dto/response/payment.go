package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type PaymentConversationResponse struct {
	ID               string                           `json:"id"`
	ConversationID   string                           `json:"conversation_id"`
	UserID           string                           `json:"user_id"`
	BookingID        *string                          `json:"booking_id,omitempty"`
	PaymentReference *string                          `json:"payment_reference,omitempty"`
	ConversationType entity.PaymentConversationType   `json:"conversation_type"`
	AmountDiscussed  *string                          `json:"amount_discussed,omitempty"`
	Currency         string                           `json:"currency"`
	PaymentMethod    *string                          `json:"payment_method,omitempty"`
	TransactionID    *string                          `json:"transaction_id,omitempty"`
	Status           entity.PaymentConversationStatus `json:"status"`
	CreatedAt        time.Time                        `json:"created_at"`
}

func PaymentConversationToResponse(c *entity.PaymentConversation) *PaymentConversationResponse {
	resp := &PaymentConversationResponse{
		ID:               c.ID.String(),
		ConversationID:   c.ConversationID,
		UserID:           c.UserID.String(),
		PaymentReference: c.PaymentReference,
		ConversationType: c.ConversationType,
		Currency:         c.Currency,
		PaymentMethod:    c.PaymentMethod,
		TransactionID:    c.TransactionID,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}

	if c.BookingID != nil {
		s := c.BookingID.String()
		resp.BookingID = &s
	}
	if c.AmountDiscussed != nil {
		s := c.AmountDiscussed.String()
		resp.AmountDiscussed = &s
	}

	return resp
}

func PaymentConversationsToResponse(convs []*entity.PaymentConversation) []PaymentConversationResponse {
	out := make([]PaymentConversationResponse, 0, len(convs))
	for _, c := range convs {
		out = append(out, *PaymentConversationToResponse(c))
	}
	return out
}
