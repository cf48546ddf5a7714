package interfaces

import (
	"context"

	"workbee/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Save replaces the whole booking document. The store guarantees atomic
// replacement of a single document but not atomicity of the surrounding
// read-modify-write, so two racing completion calls can each miss the other's
// flag; see the lifecycle use case for the documented hazard.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByWorkerID(ctx context.Context, workerID string) ([]entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	Save(ctx context.Context, b entities.Booking) (entities.Booking, error)
}
