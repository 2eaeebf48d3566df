package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func bookingReq(packageID string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		PackageID: packageID,
		Travelers: 2,
		TravelDates: request.TravelDates{
			StartDate: "2026-10-01",
			EndDate:   "2026-10-03",
		},
		TotalAmount: "4998",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	pkg := seedPackage(repo, entity.PackageAdventure, false, true)
	userID := uuid.New()

	resp, err := svc.Booking.CreateBooking(context.Background(), userID, bookingReq(pkg.ID.String()))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if !strings.HasPrefix(resp.BookingID, "JH") {
		t.Errorf("booking reference %q lacks JH prefix", resp.BookingID)
	}
	if resp.PaymentStatus != entity.PaymentPending {
		t.Errorf("payment status = %q, want pending", resp.PaymentStatus)
	}
	if resp.BookingStatus != entity.BookingPending {
		t.Errorf("booking status = %q, want pending", resp.BookingStatus)
	}
	if resp.PackageTitle != pkg.Title {
		t.Errorf("package title = %q, want %q", resp.PackageTitle, pkg.Title)
	}
	if resp.TotalAmount != "4998" {
		t.Errorf("total amount = %q, want 4998", resp.TotalAmount)
	}
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	svc := newTestService()

	_, err := svc.Booking.CreateBooking(context.Background(), uuid.New(), bookingReq(uuid.NewString()))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingInvalidAmount(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})
	pkg := seedPackage(repo, entity.PackageAdventure, false, true)

	req := bookingReq(pkg.ID.String())
	req.TotalAmount = "-100"

	_, err := svc.Booking.CreateBooking(context.Background(), uuid.New(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Booking.GetBooking(context.Background(), "JH0000000000000XXXX")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetUserBookings(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	pkg := seedPackage(repo, entity.PackageNature, false, true)
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Booking.CreateBooking(ctx, userID, bookingReq(pkg.ID.String())); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
	}

	bookings, err := svc.Booking.GetUserBookings(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserBookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
}
