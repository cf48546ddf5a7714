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

func catalogFixture() []entities.Service {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Service{
		{ID: "svc-1", Title: "Deep Cleaning", Description: "Full home cleaning", Category: "cleaning", WorkerName: "Ravi", WorkerLocation: "Mumbai, Andheri", CreatedAt: base},
		{ID: "svc-2", Title: "Pipe Repair", Description: "Leak fixes", Category: "plumbing", WorkerName: "Sunita", WorkerLocation: "Pune", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "svc-3", Title: "Sofa Cleaning", Description: "Upholstery care", Category: "cleaning", WorkerName: "Dev", WorkerLocation: "Mumbai, Bandra", CreatedAt: base.Add(24 * time.Hour)},
	}
}

func TestServiceUseCase_List(t *testing.T) {
	t.Run("no filter returns everything newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(catalogFixture(), nil)

		got, err := uc.List(context.Background(), ServiceListFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 services, got %d", len(got))
		}
		if got[0].ID != "svc-2" || got[1].ID != "svc-3" || got[2].ID != "svc-1" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("category filter is case-insensitive exact match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(catalogFixture(), nil)

		got, err := uc.List(context.Background(), ServiceListFilter{Category: " Cleaning "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 cleaning services, got %d", len(got))
		}
	})

	t.Run("location filter is a substring match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(catalogFixture(), nil)

		got, err := uc.List(context.Background(), ServiceListFilter{Location: "mumbai"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 Mumbai services, got %d", len(got))
		}
	})

	t.Run("search covers title description category and worker name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(catalogFixture(), nil).Times(2)

		got, err := uc.List(context.Background(), ServiceListFilter{Search: "leak"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "svc-2" {
			t.Fatalf("expected svc-2 by description, got %+v", got)
		}

		got, err = uc.List(context.Background(), ServiceListFilter{Search: "sunita"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "svc-2" {
			t.Fatalf("expected svc-2 by worker name, got %+v", got)
		}
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(catalogFixture(), nil)

		got, err := uc.List(context.Background(), ServiceListFilter{Category: "cleaning", Location: "bandra"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "svc-3" {
			t.Fatalf("expected only svc-3, got %+v", got)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().ListAvailable(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), ServiceListFilter{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-9").Return(entities.Service{}, nil)

		_, err := uc.GetByID(context.Background(), "svc-9")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Title: "Deep Cleaning"}, nil)

		got, err := uc.GetByID(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Deep Cleaning" {
			t.Fatalf("unexpected service: %+v", got)
		}
	})
}

func TestServiceUseCase_Create(t *testing.T) {
	valid := CreateServiceInput{
		Title:          "Deep Cleaning",
		Description:    "Full home cleaning",
		Category:       "Cleaning",
		Price:          500,
		WorkerLocation: "Mumbai",
		Coordinates:    []float64{72.87, 19.07},
	}

	t.Run("user cannot create a service", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Create(context.Background(), userActor(), valid)
		if !errors.Is(err, ErrWorkerRoleRequired) {
			t.Fatalf("expected ErrWorkerRoleRequired, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		input := valid
		input.Title = "  "
		_, err := uc.Create(context.Background(), workerActor(), input)
		if !errors.Is(err, ErrMissingServiceFields) {
			t.Fatalf("expected ErrMissingServiceFields, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		input := valid
		input.Price = 0
		_, err := uc.Create(context.Background(), workerActor(), input)
		if !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("bad coordinates", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		input := valid
		input.Coordinates = []float64{72.87}
		_, err := uc.Create(context.Background(), workerActor(), input)
		if !errors.Is(err, ErrInvalidServiceCoords) {
			t.Fatalf("expected ErrInvalidServiceCoords, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil })

		created, err := uc.Create(context.Background(), workerActor(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated service id")
		}
		if created.Category != "cleaning" {
			t.Fatalf("expected lowercased category, got %q", created.Category)
		}
		if created.WorkerID != "worker-1" || created.WorkerName != "Ravi" {
			t.Fatalf("worker snapshot missing: %+v", created)
		}
		if !created.IsActive || created.Availability != entities.ServiceAvailable {
			t.Fatalf("new listing must be active and available: %+v", created)
		}
		if created.Location.Type != "Point" || len(created.Location.Coordinates) != 2 {
			t.Fatalf("unexpected location: %+v", created.Location)
		}
	})
}

func TestServiceUseCase_ListByWorker(t *testing.T) {
	t.Run("blank worker id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.ListByWorker(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWorkerID) {
			t.Fatalf("expected ErrInvalidWorkerID, got %v", err)
		}
	})

	t.Run("passes through to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		want := []entities.Service{{ID: "svc-1", WorkerID: "worker-1"}}
		repo.EXPECT().ListByWorkerID(gomock.Any(), "worker-1").Return(want, nil)

		got, err := uc.ListByWorker(context.Background(), "worker-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "svc-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
