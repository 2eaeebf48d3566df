package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingRef string) (*response.BookingDetailResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, m *metrics.Metrics, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		metrics: m,
		log:     log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package id", ErrValidation)
	}

	amount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil || amount.IsNegative() {
		return nil, fmt.Errorf("%w: invalid total amount", ErrValidation)
	}

	// 2. Package must exist and be bookable
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to load package for booking", zap.Error(err))
		s.countError()
		return nil, fmt.Errorf("failed to create booking")
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: package", ErrNotFound)
	}

	// 3. Create booking entity; both statuses start pending
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: utils.GenerateBookingReference(),
		UserID:    userID,
		PackageID: packageID,
		Travelers: req.Travelers,
		TravelDates: entity.TravelDates{
			StartDate: req.TravelDates.StartDate,
			EndDate:   req.TravelDates.EndDate,
		},
		TotalAmount:     amount,
		PaymentStatus:   entity.PaymentPending,
		BookingStatus:   entity.BookingPending,
		SpecialRequests: req.SpecialRequests,
		PaymentMethod:   req.PaymentMethod,
	}

	// 4. Save
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("booking_id", booking.BookingID))
		s.countError()
		return nil, fmt.Errorf("failed to create booking")
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("user_id", userID.String()),
		zap.String("package_id", packageID.String()))

	booking.PackageTitle = pkg.Title
	booking.PackageLocation = pkg.Location
	booking.PackageDuration = pkg.DurationDays
	booking.PackageImages = pkg.Images

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		s.countError()
		return nil, fmt.Errorf("failed to get bookings")
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingRef string) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, bookingRef)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingRef))
		s.countError()
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}

	return response.BookingToDetailResponse(booking), nil
}

func (s *bookingService) countError() {
	if s.metrics != nil {
		s.metrics.Errors.WithLabelValues("booking").Inc()
	}
}
