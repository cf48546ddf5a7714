package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"workbee/internal/domain/entities"
	"workbee/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecipientID         = errors.New("invalid recipient id")
	ErrMissingNotificationMessage = errors.New("missing notification message")
)

// NotificationUseCase is the notification dispatcher: it persists the record
// first, then publishes a fire-and-forget event on the recipient channel. A
// recipient with no connected session simply misses the push; the persisted
// row remains retrievable via ListFor.

type NotificationUseCase struct {
	repo      interfaces.INotificationRepository
	publisher interfaces.IEventPublisher
}

var _ interfaces.INotificationDispatcher = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, publisher interfaces.IEventPublisher) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, publisher: publisher}
}

func (u *NotificationUseCase) Notify(ctx context.Context, recipientID, message string) error {
	return u.dispatch(ctx, recipientID, message, entities.EventTypeNotification, "")
}

func (u *NotificationUseCase) NotifyBookingUpdate(ctx context.Context, recipientID, message, bookingID string) error {
	return u.dispatch(ctx, recipientID, message, entities.EventTypeBookingUpdate, bookingID)
}

func (u *NotificationUseCase) NotifyPaymentProcessed(ctx context.Context, recipientID, message, bookingID string) error {
	return u.dispatch(ctx, recipientID, message, entities.EventTypePaymentProcessed, bookingID)
}

func (u *NotificationUseCase) dispatch(ctx context.Context, recipientID, message, eventType, bookingID string) error {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return ErrInvalidRecipientID
	}
	if strings.TrimSpace(message) == "" {
		return ErrMissingNotificationMessage
	}

	now := time.Now().UTC()
	n := entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Message:     message,
		Read:        false,
		CreatedAt:   now,
	}
	if _, err := u.repo.Create(ctx, n); err != nil {
		log.Printf("[notification][usecase] persist failed recipient_id=%s err=%v", recipientID, err)
		return err
	}

	if u.publisher != nil {
		u.publisher.Publish(recipientID, entities.NotificationEvent{
			Type:      eventType,
			Message:   message,
			BookingID: bookingID,
			Timestamp: now,
		})
	}
	log.Printf("[notification][usecase] dispatched recipient_id=%s type=%s", recipientID, eventType)
	return nil
}

func (u *NotificationUseCase) ListFor(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, ErrInvalidRecipientID
	}
	return u.repo.ListByRecipientID(ctx, recipientID)
}
