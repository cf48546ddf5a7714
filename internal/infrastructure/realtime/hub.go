package realtime

import (
	"log"
	"sync"

	"workbee/internal/domain/entities"
)

const subscriberBuffer = 16

// Subscriber is one connected session listening on a recipient channel.
// Events arrive on Events() in publish order.
type Subscriber struct {
	recipientID string
	events      chan entities.NotificationEvent
	closeOnce   sync.Once
}

func (s *Subscriber) RecipientID() string {
	return s.recipientID
}

func (s *Subscriber) Events() <-chan entities.NotificationEvent {
	return s.events
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() { close(s.events) })
}

// Hub routes notification events to subscribers keyed by recipient id.
//
// Delivery is at-most-once per connected subscriber: publishing to a recipient
// with no subscribers drops the event, and a subscriber whose buffer is full
// is evicted rather than blocking the publisher.

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string][]*Subscriber
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]*Subscriber)}
}

func (h *Hub) Subscribe(recipientID string) *Subscriber {
	sub := &Subscriber{
		recipientID: recipientID,
		events:      make(chan entities.NotificationEvent, subscriberBuffer),
	}

	h.mu.Lock()
	h.subscribers[recipientID] = append(h.subscribers[recipientID], sub)
	h.mu.Unlock()

	log.Printf("[realtime][hub] subscribed recipient_id=%s", recipientID)
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	h.remove(sub)
	h.mu.Unlock()
	sub.close()
	log.Printf("[realtime][hub] unsubscribed recipient_id=%s", sub.recipientID)
}

// Publish delivers the event to every subscriber of the recipient channel.
// Fire-and-forget: no acknowledgement, no retry.
func (h *Hub) Publish(recipientID string, event entities.NotificationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[recipientID]
	if len(subs) == 0 {
		return
	}
	// Deliver over a snapshot: remove rewrites the map's slice in place, which
	// would shift the elements still being walked and skip or double-deliver.
	snapshot := make([]*Subscriber, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		select {
		case sub.events <- event:
		default:
			// Slow consumer: evict instead of blocking the request path.
			h.remove(sub)
			sub.close()
			log.Printf("[realtime][hub] evicted slow subscriber recipient_id=%s", recipientID)
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscriber) {
	subs := h.subscribers[sub.recipientID]
	for i, s := range subs {
		if s == sub {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(h.subscribers, sub.recipientID)
		return
	}
	h.subscribers[sub.recipientID] = subs
}
