package interfaces

import (
	"context"

	"workbee/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByBookingAndUser(ctx context.Context, bookingID, userID string) (entities.Review, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Review, error)
}
