package request

type TravelDates struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type CreateBookingRequest struct {
	PackageID       string      `json:"package_id" validate:"required,uuid4"`
	Travelers       int         `json:"travelers" validate:"required,min=1,max=50"`
	TravelDates     TravelDates `json:"travel_dates" validate:"required"`
	TotalAmount     string      `json:"total_amount" validate:"required"`
	SpecialRequests *string     `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
	PaymentMethod   *string     `json:"payment_method,omitempty" validate:"omitempty,max=50"`
}
