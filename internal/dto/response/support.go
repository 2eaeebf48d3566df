package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type TicketResponse struct {
	ID               string                `json:"id"`
	TicketID         string                `json:"ticket_id"`
	UserID           string                `json:"user_id"`
	ChatSessionID    *string               `json:"chat_session_id,omitempty"`
	Category         entity.TicketCategory `json:"category"`
	Subcategory      *string               `json:"subcategory,omitempty"`
	Subject          string                `json:"subject"`
	Description      string                `json:"description"`
	Priority         entity.Priority       `json:"priority"`
	Status           entity.TicketStatus   `json:"status"`
	Department       string                `json:"department"`
	BookingReference *string               `json:"booking_reference,omitempty"`
	Resolution       *string               `json:"resolution,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func TicketToResponse(t *entity.SupportTicket) *TicketResponse {
	return &TicketResponse{
		ID:               t.ID.String(),
		TicketID:         t.TicketID,
		UserID:           t.UserID.String(),
		ChatSessionID:    t.ChatSessionID,
		Category:         t.Category,
		Subcategory:      t.Subcategory,
		Subject:          t.Subject,
		Description:      t.Description,
		Priority:         t.Priority,
		Status:           t.Status,
		Department:       t.Department,
		BookingReference: t.BookingReference,
		Resolution:       t.Resolution,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func TicketsToResponse(tickets []*entity.SupportTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *TicketToResponse(t))
	}
	return out
}
