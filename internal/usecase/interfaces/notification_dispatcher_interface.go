package interfaces

import (
	"context"

	"workbee/internal/domain/entities"
)

// INotificationDispatcher creates persisted notification records and pushes
// them to connected clients over the recipient channel.
//
// The booking and review flows depend on this seam instead of touching a
// socket library directly. Publish failures never fail the calling operation;
// only the persistence write can.

type INotificationDispatcher interface {
	Notify(ctx context.Context, recipientID, message string) error
	NotifyBookingUpdate(ctx context.Context, recipientID, message, bookingID string) error
	NotifyPaymentProcessed(ctx context.Context, recipientID, message, bookingID string) error
	ListFor(ctx context.Context, recipientID string) ([]entities.Notification, error)
}
