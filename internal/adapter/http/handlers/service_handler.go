package handlers

import (
	"errors"
	"net/http"

	request "workbee/internal/adapter/http/dto/request"
	response "workbee/internal/adapter/http/dto/response"
	"workbee/internal/adapter/http/middleware"
	"workbee/internal/usecase"
	"workbee/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for the service catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// ListServices is the public catalog query: always available+active listings,
// optionally narrowed by category, free-text search and location substring.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context(), usecase.ServiceListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Location: c.Query("location"),
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	coords, err := payload.ResolveCoordinates()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateServiceInput{
		Title:          payload.Title,
		Description:    payload.Description,
		Category:       payload.Category,
		Price:          payload.Price,
		WorkerLocation: payload.WorkerLocation,
		Coordinates:    coords,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *ServiceHandler) ListByWorker(c *gin.Context) {
	services, err := h.usecase.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidWorkerID),
		errors.Is(err, usecase.ErrMissingServiceFields), errors.Is(err, usecase.ErrInvalidServicePrice),
		errors.Is(err, usecase.ErrInvalidServiceCoords):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkerRoleRequired):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only workers can manage services", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
