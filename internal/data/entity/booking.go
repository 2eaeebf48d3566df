package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	Base
	BookingID       string          `db:"booking_id"` // business key, JH<millis><suffix>
	UserID          uuid.UUID       `db:"user_id"`
	PackageID       uuid.UUID       `db:"package_id"`
	Travelers       int             `db:"travelers"`
	TravelDates     TravelDates     `db:"travel_dates"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	BookingStatus   BookingStatus   `db:"booking_status"`
	SpecialRequests *string         `db:"special_requests"`
	PaymentMethod   *string         `db:"payment_method"`
	TransactionID   *string         `db:"transaction_id"`
	Notes           *string         `db:"notes"`

	// Display fields joined from packages/users; not always populated
	PackageTitle    string   `db:"package_title"`
	PackageLocation string   `db:"location"`
	PackageDuration int      `db:"duration"`
	PackageImages   []string `db:"images"`
	UserName        string   `db:"user_name"`
	UserEmail       string   `db:"user_email"`
	UserPhone       *string  `db:"user_phone"`
}
