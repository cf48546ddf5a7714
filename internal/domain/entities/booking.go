package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
//
// Transitions: pending -> accepted | rejected; accepted -> completed.
// completed is reached only when both the worker and the user have flagged the
// job as done (see Booking.WorkerCompleted / Booking.UserCompleted).

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking.
//
// Payment is processed exactly once, when both completion flags become true.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking is the booking document persisted by the booking core.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (worker_id-index): worker_id
//   - GSI2 (user_id-index): user_id
//
// Price and ServiceTitle are snapshots taken from the service at creation
// time; they are never re-read from the catalog afterwards.

type Booking struct {
	ID              string        `json:"id"`
	ServiceID       string        `json:"service_id"`
	WorkerID        string        `json:"worker_id"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name"`
	ServiceTitle    string        `json:"service_title"`
	BookingDate     string        `json:"booking_date"`
	BookingTime     string        `json:"booking_time"`
	UserAddress     string        `json:"user_address"`
	Notes           string        `json:"notes,omitempty"`
	Price           float64       `json:"price"`
	Status          BookingStatus `json:"status"`
	WorkerCompleted bool          `json:"worker_completed"`
	UserCompleted   bool          `json:"user_completed"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Finalized reports whether both sides have declared the job done.
func (b Booking) Finalized() bool {
	return b.WorkerCompleted && b.UserCompleted
}
