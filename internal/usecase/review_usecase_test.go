package usecase

import (
	"context"
	"errors"
	"testing"

	"workbee/internal/domain/entities"
	mock_interfaces "workbee/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_Submit_Validations(t *testing.T) {
	t.Run("worker cannot submit a review", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), workerActor(), SubmitReviewInput{BookingID: "bk-1", Rating: 5, Feedback: "great"})
		if !errors.Is(err, ErrUserRoleRequired) {
			t.Fatalf("expected ErrUserRoleRequired, got %v", err)
		}
	})

	t.Run("blank booking id", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), userActor(), SubmitReviewInput{BookingID: " ", Rating: 5, Feedback: "great"})
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("rating above range is rejected before any lookup", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), userActor(), SubmitReviewInput{BookingID: "bk-1", Rating: 6, Feedback: "great"})
		if !errors.Is(err, ErrInvalidReviewRating) {
			t.Fatalf("expected ErrInvalidReviewRating, got %v", err)
		}
	})

	t.Run("rating below range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), userActor(), SubmitReviewInput{BookingID: "bk-1", Rating: 0, Feedback: "great"})
		if !errors.Is(err, ErrInvalidReviewRating) {
			t.Fatalf("expected ErrInvalidReviewRating, got %v", err)
		}
	})

	t.Run("blank feedback", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), userActor(), SubmitReviewInput{BookingID: "bk-1", Rating: 5, Feedback: "  "})
		if !errors.Is(err, ErrMissingReviewFeedback) {
			t.Fatalf("expected ErrMissingReviewFeedback, got %v", err)
		}
	})
}

func TestReviewUseCase_Submit_BookingChecks(t *testing.T) {
	input := SubmitReviewInput{BookingID: "bk-1", Rating: 4, Feedback: "solid work"}

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReviewUseCase(nil, bookingRepo)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{}, nil)

		_, err := uc.Submit(context.Background(), userActor(), input)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("booking belongs to another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReviewUseCase(nil, bookingRepo)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", UserID: "user-2", PaymentStatus: entities.PaymentStatusPaid}, nil)

		_, err := uc.Submit(context.Background(), userActor(), input)
		if !errors.Is(err, ErrNotBookingOwner) {
			t.Fatalf("expected ErrNotBookingOwner, got %v", err)
		}
	})

	t.Run("unpaid booking cannot be reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReviewUseCase(nil, bookingRepo)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", UserID: "user-1", Status: entities.BookingStatusCompleted, PaymentStatus: entities.PaymentStatusPending}, nil)

		_, err := uc.Submit(context.Background(), userActor(), input)
		if !errors.Is(err, ErrBookingNotPaid) {
			t.Fatalf("expected ErrBookingNotPaid, got %v", err)
		}
	})

	t.Run("duplicate review rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewReviewUseCase(repo, bookingRepo)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", UserID: "user-1", WorkerID: "worker-1", PaymentStatus: entities.PaymentStatusPaid}, nil)
		repo.EXPECT().GetByBookingAndUser(gomock.Any(), "bk-1", "user-1").Return(entities.Review{ID: "rv-1"}, nil)

		_, err := uc.Submit(context.Background(), userActor(), input)
		if !errors.Is(err, ErrReviewAlreadyExists) {
			t.Fatalf("expected ErrReviewAlreadyExists, got %v", err)
		}
	})
}

func TestReviewUseCase_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIReviewRepository(ctrl)
	bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
	uc := NewReviewUseCase(repo, bookingRepo)

	bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", UserID: "user-1", WorkerID: "worker-1", PaymentStatus: entities.PaymentStatusPaid}, nil)
	repo.EXPECT().GetByBookingAndUser(gomock.Any(), "bk-1", "user-1").Return(entities.Review{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil })

	created, err := uc.Submit(context.Background(), userActor(), SubmitReviewInput{BookingID: "bk-1", Rating: 5, Feedback: "  spotless  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated review id")
	}
	if created.WorkerID != "worker-1" || created.UserID != "user-1" {
		t.Fatalf("review not linked to booking parties: %+v", created)
	}
	if created.Feedback != "spotless" {
		t.Fatalf("expected trimmed feedback, got %q", created.Feedback)
	}
}

func TestReviewUseCase_ListByBooking(t *testing.T) {
	t.Run("blank booking id", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		_, err := uc.ListByBooking(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("passes through to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(repo, nil)

		want := []entities.Review{{ID: "rv-1", BookingID: "bk-1", Rating: 5}}
		repo.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return(want, nil)

		got, err := uc.ListByBooking(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "rv-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
