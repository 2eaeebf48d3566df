package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByReference(ctx context.Context, bookingRef string) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts a new booking. Single INSERT, no surrounding transaction.
func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			id, booking_id, user_id, package_id, travelers, travel_dates,
			total_amount, payment_status, booking_status, special_requests,
			payment_method, transaction_id, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	travelDates, err := marshalBlob(booking.TravelDates)
	if err != nil {
		return err
	}

	_, err = br.db.Exec(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.UserID,
		booking.PackageID,
		booking.Travelers,
		travelDates,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.BookingStatus,
		booking.SpecialRequests,
		booking.PaymentMethod,
		booking.TransactionID,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

// FindByUserID returns a user's bookings newest first, joined with the
// package display fields
func (br *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT
			b.id, b.booking_id, b.user_id, b.package_id, b.travelers,
			b.travel_dates, b.total_amount, b.payment_status, b.booking_status,
			b.special_requests, b.payment_method, b.transaction_id, b.notes,
			b.created_at, b.updated_at,
			p.title, p.location, p.duration
		FROM bookings b
		JOIN packages p ON b.package_id = p.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := br.db.Query(ctx, query, userID)
	if err != nil {
		br.log.Error("Failed to query user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		var travelDates []byte

		err := rows.Scan(
			&booking.ID,
			&booking.BookingID,
			&booking.UserID,
			&booking.PackageID,
			&booking.Travelers,
			&travelDates,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.BookingStatus,
			&booking.SpecialRequests,
			&booking.PaymentMethod,
			&booking.TransactionID,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&booking.PackageTitle,
			&booking.PackageLocation,
			&booking.PackageDuration,
		)
		if err != nil {
			br.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		if err := unmarshalBlob(travelDates, &booking.TravelDates); err != nil {
			return nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// FindByReference looks up one booking by its business key, joined with the
// package and user display fields
func (br *bookingRepository) FindByReference(ctx context.Context, bookingRef string) (*entity.Booking, error) {
	query := `
		SELECT
			b.id, b.booking_id, b.user_id, b.package_id, b.travelers,
			b.travel_dates, b.total_amount, b.payment_status, b.booking_status,
			b.special_requests, b.payment_method, b.transaction_id, b.notes,
			b.created_at, b.updated_at,
			p.title, p.location, p.duration, p.images,
			u.name, u.email, u.phone
		FROM bookings b
		JOIN packages p ON b.package_id = p.id
		JOIN users u ON b.user_id = u.id
		WHERE b.booking_id = $1
	`

	var booking entity.Booking
	var travelDates, images []byte

	err := br.db.QueryRow(ctx, query, bookingRef).Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.UserID,
		&booking.PackageID,
		&booking.Travelers,
		&travelDates,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.SpecialRequests,
		&booking.PaymentMethod,
		&booking.TransactionID,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.PackageTitle,
		&booking.PackageLocation,
		&booking.PackageDuration,
		&images,
		&booking.UserName,
		&booking.UserEmail,
		&booking.UserPhone,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingRef),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingRef, err)
	}

	if err := unmarshalBlob(travelDates, &booking.TravelDates); err != nil {
		return nil, err
	}
	booking.PackageImages = unmarshalStringList(images)

	return &booking, nil
}
