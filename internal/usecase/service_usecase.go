package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"workbee/internal/domain/entities"
	"workbee/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrMissingServiceFields = errors.New("missing required service fields")
	ErrInvalidServicePrice  = errors.New("invalid service price")
	ErrInvalidServiceCoords = errors.New("invalid location coordinates")
	ErrInvalidWorkerID      = errors.New("invalid worker id")
)

// ServiceListFilter narrows the public catalog listing. All fields optional.
type ServiceListFilter struct {
	Category string
	Search   string
	Location string
}

// CreateServiceInput carries the worker-provided fields of a new listing.
type CreateServiceInput struct {
	Title          string
	Description    string
	Category       string
	Price          float64
	WorkerLocation string
	Coordinates    []float64 // [longitude, latitude]
}

// IServiceUseCase exposes the catalog operations the booking engine depends
// on, plus the worker-facing listing management recovered alongside it.

type IServiceUseCase interface {
	List(ctx context.Context, filter ServiceListFilter) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, actor entities.Actor, input CreateServiceInput) (entities.Service, error)
	ListByWorker(ctx context.Context, workerID string) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// List always restricts to available, active listings; the optional filters
// are a thin in-memory pass over that set, newest first.
func (u *ServiceUseCase) List(ctx context.Context, filter ServiceListFilter) ([]entities.Service, error) {
	services, err := u.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(filter.Category))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(s.WorkerLocation), location) {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchesSearch(s entities.Service, search string) bool {
	for _, field := range []string{s.Title, s.Description, s.Category, s.WorkerName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) Create(ctx context.Context, actor entities.Actor, input CreateServiceInput) (entities.Service, error) {
	if actor.Role != entities.RoleWorker {
		return entities.Service{}, ErrWorkerRoleRequired
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if title == "" || description == "" || category == "" {
		return entities.Service{}, ErrMissingServiceFields
	}
	if input.Price <= 0 {
		return entities.Service{}, ErrInvalidServicePrice
	}
	if len(input.Coordinates) != 2 {
		return entities.Service{}, ErrInvalidServiceCoords
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		Category:       category,
		Price:          input.Price,
		WorkerID:       actor.ID,
		WorkerName:     actor.Name,
		WorkerLocation: strings.TrimSpace(input.WorkerLocation),
		Location: entities.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{input.Coordinates[0], input.Coordinates[1]},
		},
		Availability: entities.ServiceAvailable,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) ListByWorker(ctx context.Context, workerID string) ([]entities.Service, error) {
	workerID = strings.TrimSpace(workerID)
	if workerID == "" {
		return nil, ErrInvalidWorkerID
	}
	return u.repo.ListByWorkerID(ctx, workerID)
}
