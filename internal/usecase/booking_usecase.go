package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"workbee/internal/domain/entities"
	"workbee/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrMissingBookingFields = errors.New("missing required booking fields")
	ErrInvalidBookingStatus = errors.New("invalid booking status value")
	ErrUserRoleRequired     = errors.New("operation requires the user role")
	ErrWorkerRoleRequired   = errors.New("operation requires the worker role")
	ErrNotBookingOwner      = errors.New("actor does not own this booking")
	ErrBookingNotAccepted   = errors.New("booking must be accepted before completion")
	ErrBookingNotPending    = errors.New("booking decision has already been made")
)

// CreateBookingInput carries the user-provided fields of a new booking.
// Price, worker id and service title are snapshotted from the service.
type CreateBookingInput struct {
	ServiceID   string
	BookingDate string
	BookingTime string
	UserAddress string
	Notes       string
}

// IBookingUseCase is the booking lifecycle engine.
//
// State machine per booking:
//   - pending -> accepted | rejected (worker decision)
//   - accepted -> completed, reached only when both completion flags are true
//
// Payment is finalized exactly once, by whichever completion call observes the
// other side's flag already set.

type IBookingUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input CreateBookingInput) (entities.Booking, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, bookingID string, status entities.BookingStatus) (entities.Booking, error)
	UpdateUserCompletion(ctx context.Context, actor entities.Actor, bookingID string) (entities.Booking, error)
	ListByWorker(ctx context.Context, actor entities.Actor, workerID string) ([]entities.Booking, error)
	ListByUser(ctx context.Context, actor entities.Actor, userID string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo        interfaces.IBookingRepository
	serviceRepo interfaces.IServiceRepository
	dispatcher  interfaces.INotificationDispatcher
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, serviceRepo interfaces.IServiceRepository, dispatcher interfaces.INotificationDispatcher) *BookingUseCase {
	return &BookingUseCase{repo: repo, serviceRepo: serviceRepo, dispatcher: dispatcher}
}

func (u *BookingUseCase) Create(ctx context.Context, actor entities.Actor, input CreateBookingInput) (entities.Booking, error) {
	if actor.Role != entities.RoleUser {
		return entities.Booking{}, ErrUserRoleRequired
	}

	serviceID := strings.TrimSpace(input.ServiceID)
	bookingDate := strings.TrimSpace(input.BookingDate)
	bookingTime := strings.TrimSpace(input.BookingTime)
	userAddress := strings.TrimSpace(input.UserAddress)
	if serviceID == "" || bookingDate == "" || bookingTime == "" || userAddress == "" {
		return entities.Booking{}, ErrMissingBookingFields
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		log.Printf("[booking][usecase] create failed loading service service_id=%s err=%v", serviceID, err)
		return entities.Booking{}, err
	}
	if svc.ID == "" || !svc.IsActive {
		return entities.Booking{}, ErrServiceNotFound
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		ServiceID:     svc.ID,
		WorkerID:      svc.WorkerID,
		UserID:        actor.ID,
		UserName:      actor.Name,
		ServiceTitle:  svc.Title,
		BookingDate:   bookingDate,
		BookingTime:   bookingTime,
		UserAddress:   userAddress,
		Notes:         strings.TrimSpace(input.Notes),
		Price:         svc.Price,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create persist failed service_id=%s err=%v", serviceID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] create success booking_id=%s service_id=%s worker_id=%s", created.ID, svc.ID, svc.WorkerID)

	msg := fmt.Sprintf("New booking request for your service %q from %s.", svc.Title, actor.Name)
	if err := u.dispatcher.Notify(ctx, svc.WorkerID, msg); err != nil {
		log.Printf("[booking][usecase] worker notification failed booking_id=%s err=%v", created.ID, err)
		return entities.Booking{}, err
	}

	return created, nil
}

func (u *BookingUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, bookingID string, status entities.BookingStatus) (entities.Booking, error) {
	if actor.Role != entities.RoleWorker {
		return entities.Booking{}, ErrWorkerRoleRequired
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	switch status {
	case entities.BookingStatusAccepted, entities.BookingStatusRejected, entities.BookingStatusCompleted:
	default:
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.WorkerID != actor.ID {
		return entities.Booking{}, ErrNotBookingOwner
	}

	if status == entities.BookingStatusCompleted {
		b.WorkerCompleted = true
		// Finalize only when the user already flagged completion. Otherwise
		// the visible status stays accepted despite the worker-side flag.
		if b.UserCompleted {
			finalize(&b)
			if err := u.notifyPayment(ctx, b, b.UserID); err != nil {
				return entities.Booking{}, err
			}
		}
	} else {
		// Accept/reject is a one-shot decision on a pending booking. Replaying
		// it later would demote a finalized booking while payment stays paid.
		if b.Status != entities.BookingStatusPending {
			return entities.Booking{}, ErrBookingNotPending
		}
		b.Status = status
	}

	// Read-modify-write against a single document: a user-side completion call
	// racing this one can observe worker_completed=false and skip finalization
	// even though both flags end up true. Closing that window needs a
	// conditional write on the read version or a per-booking lock.
	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] update-status save failed booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] update-status success booking_id=%s requested=%s status=%s payment=%s", saved.ID, status, saved.Status, saved.PaymentStatus)

	// The message always reports the requested status, so a non-finalizing
	// completion call tells the user "completed" while the stored status is
	// still accepted. Known quirk, kept as-is.
	msg := fmt.Sprintf("Your booking for %q has been %s.", saved.ServiceTitle, status)
	if err := u.dispatcher.NotifyBookingUpdate(ctx, saved.UserID, msg, saved.ID); err != nil {
		log.Printf("[booking][usecase] user notification failed booking_id=%s err=%v", saved.ID, err)
		return entities.Booking{}, err
	}

	return saved, nil
}

func (u *BookingUseCase) UpdateUserCompletion(ctx context.Context, actor entities.Actor, bookingID string) (entities.Booking, error) {
	if actor.Role != entities.RoleUser {
		return entities.Booking{}, ErrUserRoleRequired
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.UserID != actor.ID {
		return entities.Booking{}, ErrNotBookingOwner
	}
	if b.Status != entities.BookingStatusAccepted {
		return entities.Booking{}, ErrBookingNotAccepted
	}

	b.UserCompleted = true
	if b.WorkerCompleted {
		finalize(&b)
		if err := u.notifyPayment(ctx, b, b.WorkerID); err != nil {
			return entities.Booking{}, err
		}
	}

	// Same dual-read hazard as UpdateStatus; see the comment there.
	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] user-completion save failed booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] user-completion success booking_id=%s status=%s payment=%s", saved.ID, saved.Status, saved.PaymentStatus)

	msg := fmt.Sprintf("You have marked the booking for %q as completed.", saved.ServiceTitle)
	if err := u.dispatcher.Notify(ctx, saved.UserID, msg); err != nil {
		log.Printf("[booking][usecase] self notification failed booking_id=%s err=%v", saved.ID, err)
		return entities.Booking{}, err
	}

	return saved, nil
}

func (u *BookingUseCase) ListByWorker(ctx context.Context, actor entities.Actor, workerID string) ([]entities.Booking, error) {
	if actor.Role != entities.RoleWorker {
		return nil, ErrWorkerRoleRequired
	}
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, ErrInvalidBookingID
	}
	// Workers can only view their own bookings.
	if workerID != actor.ID {
		return nil, ErrNotBookingOwner
	}
	return u.repo.ListByWorkerID(ctx, workerID)
}

func (u *BookingUseCase) ListByUser(ctx context.Context, actor entities.Actor, userID string) ([]entities.Booking, error) {
	if actor.Role != entities.RoleUser {
		return nil, ErrUserRoleRequired
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidBookingID
	}
	if userID != actor.ID {
		return nil, ErrNotBookingOwner
	}
	return u.repo.ListByUserID(ctx, userID)
}

// finalize marks the booking completed and its payment processed. Idempotent
// in effect: applying it twice yields the same observable state.
func finalize(b *entities.Booking) {
	b.Status = entities.BookingStatusCompleted
	b.PaymentStatus = entities.PaymentStatusPaid
}

func (u *BookingUseCase) notifyPayment(ctx context.Context, b entities.Booking, recipientID string) error {
	msg := fmt.Sprintf("Payment of ₹%s has been processed for booking %q.", formatPrice(b.Price), b.ServiceTitle)
	if err := u.dispatcher.NotifyPaymentProcessed(ctx, recipientID, msg, b.ID); err != nil {
		log.Printf("[booking][usecase] payment notification failed booking_id=%s recipient_id=%s err=%v", b.ID, recipientID, err)
		return err
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
