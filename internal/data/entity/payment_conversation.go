package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentConversationType string

const (
	PaymentInquiry PaymentConversationType = "payment_inquiry"
	RefundRequest  PaymentConversationType = "refund_request"
	PaymentIssue   PaymentConversationType = "payment_issue"
)

type PaymentConversationStatus string

const (
	ConversationOpen      PaymentConversationStatus = "open"
	ConversationResolved  PaymentConversationStatus = "resolved"
	ConversationEscalated PaymentConversationStatus = "escalated"
)

// PaymentConversation tracks a payment-related exchange with a customer.
// No payment processing happens here; these are conversation records only.
type PaymentConversation struct {
	Base
	ConversationID    string                    `db:"conversation_id"` // business key, PAY<millis><suffix>
	UserID            uuid.UUID                 `db:"user_id"`
	BookingID         *uuid.UUID                `db:"booking_id"`
	PaymentReference  *string                   `db:"payment_reference"`
	ConversationType  PaymentConversationType   `db:"conversation_type"`
	AmountDiscussed   *decimal.Decimal          `db:"amount_discussed"`
	Currency          string                    `db:"currency"`
	PaymentMethod     *string                   `db:"payment_method"`
	TransactionID     *string                   `db:"transaction_id"`
	Status            PaymentConversationStatus `db:"status"`
	ResolutionDetails *string                   `db:"resolution_details"`
	ConversationData  UserInfo                  `db:"conversation_data"`
	ResolvedAt        *time.Time                `db:"resolved_at"`
}
