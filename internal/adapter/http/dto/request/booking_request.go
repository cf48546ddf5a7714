package request

// CreateBookingRequest is the payload accepted by POST /v1/bookings.
type CreateBookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	UserAddress string `json:"user_address" binding:"required"`
	Notes       string `json:"notes"`
}

// UpdateBookingStatusRequest carries the worker's requested transition.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
