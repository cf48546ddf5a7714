package response

import (
	"time"

	"workbee/internal/domain/entities"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	WorkerID        string    `json:"worker_id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	ServiceTitle    string    `json:"service_title"`
	BookingDate     string    `json:"booking_date"`
	BookingTime     string    `json:"booking_time"`
	UserAddress     string    `json:"user_address"`
	Notes           string    `json:"notes,omitempty"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	WorkerCompleted bool      `json:"worker_completed"`
	UserCompleted   bool      `json:"user_completed"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		WorkerID:        b.WorkerID,
		UserID:          b.UserID,
		UserName:        b.UserName,
		ServiceTitle:    b.ServiceTitle,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		UserAddress:     b.UserAddress,
		Notes:           b.Notes,
		Price:           b.Price,
		Status:          string(b.Status),
		WorkerCompleted: b.WorkerCompleted,
		UserCompleted:   b.UserCompleted,
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
