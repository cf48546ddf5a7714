package entities

import "time"

// Notification is a persisted message for a user or worker.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id
//
// The record outlives the real-time push: if the recipient has no connected
// session when the event fires, the row is still retrievable on the next
// dashboard fetch.

type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Event types published on recipient channels.
const (
	EventTypeNotification     = "notification"
	EventTypeBookingUpdate    = "booking_update"
	EventTypePaymentProcessed = "payment_processed"
)

// NotificationEvent is the real-time projection of a notification, pushed to
// the recipient's connected sessions.
type NotificationEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	BookingID string    `json:"bookingId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
