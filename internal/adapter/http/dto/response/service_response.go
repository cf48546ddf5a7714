package response

import (
	"time"

	"workbee/internal/domain/entities"
)

type LocationResponse struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type ServiceResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Price          float64          `json:"price"`
	WorkerID       string           `json:"worker_id"`
	WorkerName     string           `json:"worker_name"`
	WorkerLocation string           `json:"worker_location,omitempty"`
	Location       LocationResponse `json:"location"`
	Availability   string           `json:"availability"`
	IsActive       bool             `json:"is_active"`
	AverageRating  float64          `json:"average_rating"`
	ViewCount      int              `json:"view_count"`
	BookedCount    int              `json:"booked_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		Category:       s.Category,
		Price:          s.Price,
		WorkerID:       s.WorkerID,
		WorkerName:     s.WorkerName,
		WorkerLocation: s.WorkerLocation,
		Location: LocationResponse{
			Type:        s.Location.Type,
			Coordinates: s.Location.Coordinates,
		},
		Availability:  string(s.Availability),
		IsActive:      s.IsActive,
		AverageRating: s.AverageRating,
		ViewCount:     s.ViewCount,
		BookedCount:   s.BookedCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
