package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbee/internal/domain/entities"
	mock_interfaces "workbee/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_Notify_Validations(t *testing.T) {
	t.Run("blank recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		err := uc.Notify(context.Background(), "  ", "hello")
		if !errors.Is(err, ErrInvalidRecipientID) {
			t.Fatalf("expected ErrInvalidRecipientID, got %v", err)
		}
	})

	t.Run("blank message", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		err := uc.Notify(context.Background(), "user-1", "  ")
		if !errors.Is(err, ErrMissingNotificationMessage) {
			t.Fatalf("expected ErrMissingNotificationMessage, got %v", err)
		}
	})
}

func TestNotificationUseCase_Notify_PersistsThenPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewNotificationUseCase(repo, publisher)

	var persisted entities.Notification
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				persisted = n
				return n, nil
			}),
		publisher.EXPECT().Publish("user-1", gomock.Any()).Do(
			func(_ string, event entities.NotificationEvent) {
				if event.Type != entities.EventTypeNotification {
					t.Errorf("expected notification event type, got %q", event.Type)
				}
				if event.Message != "hello" || event.BookingID != "" {
					t.Errorf("unexpected event: %+v", event)
				}
			}),
	)

	if err := uc.Notify(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.ID == "" || persisted.RecipientID != "user-1" || persisted.Read {
		t.Fatalf("unexpected persisted notification: %+v", persisted)
	}
}

func TestNotificationUseCase_EventTypes(t *testing.T) {
	cases := []struct {
		name     string
		call     func(uc *NotificationUseCase) error
		wantType string
		wantBkg  string
	}{
		{
			name:     "booking update",
			call:     func(uc *NotificationUseCase) error { return uc.NotifyBookingUpdate(context.Background(), "user-1", "updated", "bk-1") },
			wantType: entities.EventTypeBookingUpdate,
			wantBkg:  "bk-1",
		},
		{
			name:     "payment processed",
			call:     func(uc *NotificationUseCase) error { return uc.NotifyPaymentProcessed(context.Background(), "worker-1", "paid", "bk-1") },
			wantType: entities.EventTypePaymentProcessed,
			wantBkg:  "bk-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockINotificationRepository(ctrl)
			publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
			uc := NewNotificationUseCase(repo, publisher)

			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil })
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(
				func(_ string, event entities.NotificationEvent) {
					if event.Type != tc.wantType {
						t.Errorf("expected type %q, got %q", tc.wantType, event.Type)
					}
					if event.BookingID != tc.wantBkg {
						t.Errorf("expected booking id %q, got %q", tc.wantBkg, event.BookingID)
					}
				})

			if err := tc.call(uc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNotificationUseCase_NilPublisherStillPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil })

	if err := uc.Notify(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotificationUseCase_PersistFailureSkipsPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewNotificationUseCase(repo, publisher)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("db"))

	err := uc.Notify(context.Background(), "user-1", "hello")
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestNotificationUseCase_ListFor(t *testing.T) {
	t.Run("blank recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.ListFor(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRecipientID) {
			t.Fatalf("expected ErrInvalidRecipientID, got %v", err)
		}
	})

	t.Run("passes through to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)

		want := []entities.Notification{{ID: "nt-1", RecipientID: "user-1", CreatedAt: time.Now().UTC()}}
		repo.EXPECT().ListByRecipientID(gomock.Any(), "user-1").Return(want, nil)

		got, err := uc.ListFor(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "nt-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
