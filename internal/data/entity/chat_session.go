package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionGeneral   SessionType = "general"
	SessionBooking   SessionType = "booking"
	SessionSupport   SessionType = "support"
	SessionComplaint SessionType = "complaint"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionClosed    SessionStatus = "closed"
	SessionPending   SessionStatus = "pending"
	SessionEscalated SessionStatus = "escalated"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ChatSession is one continuous conversation between a user and the bot.
// Closed sessions stay in storage; they are never deleted.
type ChatSession struct {
	Base
	SessionID          string          `db:"session_id"` // business key, CHAT_<millis>_<suffix>
	UserID             uuid.UUID       `db:"user_id"`
	SessionType        SessionType     `db:"session_type"`
	Status             SessionStatus   `db:"status"`
	Priority           Priority        `db:"priority"`
	BookingReference   *string         `db:"booking_reference"`
	UserInfo           UserInfo        `db:"user_info"`
	Metadata           SessionMetadata `db:"session_metadata"`
	ResolvedAt         *time.Time      `db:"resolved_at"`
	AssignedAgent      *string         `db:"assigned_agent"`
	SatisfactionRating *int            `db:"satisfaction_rating"`
	Feedback           *string         `db:"feedback"`
}
