package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type TravelDates struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	BookingID       string               `json:"booking_id"`
	UserID          string               `json:"user_id"`
	PackageID       string               `json:"package_id"`
	PackageTitle    string               `json:"package_title,omitempty"`
	PackageLocation string               `json:"location,omitempty"`
	PackageDuration int                  `json:"duration,omitempty"`
	PackageImages   []string             `json:"images,omitempty"`
	Travelers       int                  `json:"travelers"`
	TravelDates     TravelDates          `json:"travel_dates"`
	TotalAmount     string               `json:"total_amount"`
	PaymentStatus   entity.PaymentStatus `json:"payment_status"`
	BookingStatus   entity.BookingStatus `json:"booking_status"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	PaymentMethod   *string              `json:"payment_method,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	UserName  string  `json:"user_name,omitempty"`
	UserEmail string  `json:"user_email,omitempty"`
	UserPhone *string `json:"user_phone,omitempty"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		BookingID:       b.BookingID,
		UserID:          b.UserID.String(),
		PackageID:       b.PackageID.String(),
		PackageTitle:    b.PackageTitle,
		PackageLocation: b.PackageLocation,
		PackageDuration: b.PackageDuration,
		PackageImages:   b.PackageImages,
		Travelers:       b.Travelers,
		TravelDates:     TravelDates{StartDate: b.TravelDates.StartDate, EndDate: b.TravelDates.EndDate},
		TotalAmount:     b.TotalAmount.String(),
		PaymentStatus:   b.PaymentStatus,
		BookingStatus:   b.BookingStatus,
		SpecialRequests: b.SpecialRequests,
		PaymentMethod:   b.PaymentMethod,
		CreatedAt:       b.CreatedAt,
	}
}

func BookingToDetailResponse(b *entity.Booking) *BookingDetailResponse {
	return &BookingDetailResponse{
		BookingResponse: BookingToResponse(b),
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		UserPhone:       b.UserPhone,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
