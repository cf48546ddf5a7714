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
	ErrInvalidReviewRating   = errors.New("rating must be between 1 and 5")
	ErrMissingReviewFeedback = errors.New("missing review feedback")
	ErrReviewAlreadyExists   = errors.New("review already exists for this booking")
	ErrBookingNotPaid        = errors.New("booking payment has not been processed")
)

// SubmitReviewInput carries the user-provided fields of a review.
type SubmitReviewInput struct {
	BookingID string
	Rating    int
	Feedback  string
}

// IReviewUseCase enforces the one-review-per-booking rule on paid bookings.
//
// Submitting a review does not mutate the booking or the service rating
// aggregate; the catalog's average rating is recomputed only from reviews
// embedded directly in the service document, which this flow never writes.

type IReviewUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, input SubmitReviewInput) (entities.Review, error)
	ListByBooking(ctx context.Context, bookingID string) ([]entities.Review, error)
}

type ReviewUseCase struct {
	repo        interfaces.IReviewRepository
	bookingRepo interfaces.IBookingRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, bookingRepo interfaces.IBookingRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, bookingRepo: bookingRepo}
}

func (u *ReviewUseCase) Submit(ctx context.Context, actor entities.Actor, input SubmitReviewInput) (entities.Review, error) {
	if actor.Role != entities.RoleUser {
		return entities.Review{}, ErrUserRoleRequired
	}

	bookingID := strings.TrimSpace(input.BookingID)
	if bookingID == "" {
		return entities.Review{}, ErrInvalidBookingID
	}
	if input.Rating < 1 || input.Rating > 5 {
		return entities.Review{}, ErrInvalidReviewRating
	}
	feedback := strings.TrimSpace(input.Feedback)
	if feedback == "" {
		return entities.Review{}, ErrMissingReviewFeedback
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Review{}, err
	}
	if b.ID == "" {
		return entities.Review{}, ErrBookingNotFound
	}
	if b.UserID != actor.ID {
		return entities.Review{}, ErrNotBookingOwner
	}
	if b.PaymentStatus != entities.PaymentStatusPaid {
		return entities.Review{}, ErrBookingNotPaid
	}

	existing, err := u.repo.GetByBookingAndUser(ctx, bookingID, actor.ID)
	if err != nil {
		return entities.Review{}, err
	}
	if existing.ID != "" {
		return entities.Review{}, ErrReviewAlreadyExists
	}

	r := entities.Review{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		UserID:    actor.ID,
		WorkerID:  b.WorkerID,
		Rating:    input.Rating,
		Feedback:  feedback,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[review][usecase] create failed booking_id=%s err=%v", bookingID, err)
		return entities.Review{}, err
	}
	log.Printf("[review][usecase] create success review_id=%s booking_id=%s rating=%d", created.ID, bookingID, created.Rating)
	return created, nil
}

func (u *ReviewUseCase) ListByBooking(ctx context.Context, bookingID string) ([]entities.Review, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}
