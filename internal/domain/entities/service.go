package entities

import "time"

// ServiceAvailability flags whether a service currently accepts bookings.

type ServiceAvailability string

const (
	ServiceAvailable ServiceAvailability = "available"
	ServiceBusy      ServiceAvailability = "busy"
)

// GeoPoint is a GeoJSON-style point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ServiceReview is a review embedded directly in a service document.
//
// Note: the booking review flow persists reviews in their own table and never
// appends to this array, so AverageRating only moves when a service is saved
// with embedded reviews through some other path. Kept for parity with the
// stored documents.
type ServiceReview struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Service is a catalog listing owned by a worker.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (worker_id-index): worker_id

type Service struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	Price          float64             `json:"price"`
	WorkerID       string              `json:"worker_id"`
	WorkerName     string              `json:"worker_name"`
	WorkerLocation string              `json:"worker_location,omitempty"`
	Location       GeoPoint            `json:"location"`
	Availability   ServiceAvailability `json:"availability"`
	IsActive       bool                `json:"is_active"`
	AverageRating  float64             `json:"average_rating"`
	Reviews        []ServiceReview     `json:"reviews,omitempty"`
	ViewCount      int                 `json:"view_count"`
	BookedCount    int                 `json:"booked_count"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// RecalculateAverageRating recomputes AverageRating as the mean of the
// embedded review ratings. Called on every save.
func (s *Service) RecalculateAverageRating() {
	if len(s.Reviews) == 0 {
		s.AverageRating = 0
		return
	}
	total := 0
	for _, r := range s.Reviews {
		total += r.Rating
	}
	s.AverageRating = float64(total) / float64(len(s.Reviews))
}
