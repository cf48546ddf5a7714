package interfaces

import (
	"context"

	"workbee/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// ListByRecipientID returns newest first.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
}
