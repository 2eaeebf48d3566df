package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketCategory string

const (
	CategoryBooking   TicketCategory = "booking"
	CategoryPayment   TicketCategory = "payment"
	CategoryTechnical TicketCategory = "technical"
	CategoryGeneral   TicketCategory = "general"
	CategoryComplaint TicketCategory = "complaint"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
	TicketEscalated  TicketStatus = "escalated"
)

const DefaultDepartment = "customer_service"

type SupportTicket struct {
	Base
	TicketID         string         `db:"ticket_id"` // business key, TKT<millis><suffix>
	UserID           uuid.UUID      `db:"user_id"`
	ChatSessionID    *string        `db:"chat_session_id"`
	Category         TicketCategory `db:"category"`
	Subcategory      *string        `db:"subcategory"`
	Subject          string         `db:"subject"`
	Description      string         `db:"description"`
	Priority         Priority       `db:"priority"`
	Status           TicketStatus   `db:"status"`
	AssignedTo       *string        `db:"assigned_to"`
	Department       string         `db:"department"`
	BookingReference *string        `db:"booking_reference"`
	CustomerInfo     UserInfo       `db:"customer_info"`
	Resolution       *string        `db:"resolution"`
	ResolutionTime   *time.Time     `db:"resolution_time"`
	Satisfaction     *int           `db:"customer_satisfaction"`
	Feedback         *string        `db:"feedback"`
}
