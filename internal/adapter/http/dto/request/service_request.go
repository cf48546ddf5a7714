package request

import "errors"

var ErrInvalidCoordinates = errors.New("location coordinates must be [longitude, latitude]")

type LocationRequest struct {
	Coordinates []float64 `json:"coordinates" binding:"required"`
}

// CreateServiceRequest is the payload accepted by POST /v1/services.
type CreateServiceRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Price          float64         `json:"price" binding:"required"`
	WorkerLocation string          `json:"worker_location"`
	Location       LocationRequest `json:"location" binding:"required"`
}

// ResolveCoordinates validates the GeoJSON-style [longitude, latitude] pair.
func (r CreateServiceRequest) ResolveCoordinates() ([]float64, error) {
	if len(r.Location.Coordinates) != 2 {
		return nil, ErrInvalidCoordinates
	}
	return r.Location.Coordinates, nil
}
