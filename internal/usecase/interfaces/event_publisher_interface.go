package interfaces

import "workbee/internal/domain/entities"

// IEventPublisher pushes an event on the channel identified by a recipient id.
//
// Delivery is fire-and-forget and best-effort: if nobody is subscribed to the
// recipient channel the event is dropped. Implemented by the realtime hub.

type IEventPublisher interface {
	Publish(recipientID string, event entities.NotificationEvent)
}
