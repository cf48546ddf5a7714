package handlers

import (
	"errors"
	"log"
	"net/http"

	request "workbee/internal/adapter/http/dto/request"
	response "workbee/internal/adapter/http/dto/response"
	"workbee/internal/adapter/http/middleware"
	"workbee/internal/domain/entities"
	"workbee/internal/usecase"
	"workbee/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errMissingActor          = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] create start service_id=%s actor_id=%s", payload.ServiceID, actor.ID)
	created, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateBookingInput{
		ServiceID:   payload.ServiceID,
		BookingDate: payload.BookingDate,
		BookingTime: payload.BookingTime,
		UserAddress: payload.UserAddress,
		Notes:       payload.Notes,
	})
	if err != nil {
		log.Printf("[booking][handler] create failed service_id=%s err=%v", payload.ServiceID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(created))
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	bookingID := c.Param("bookingId")

	var payload request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] update-status start booking_id=%s requested=%s actor_id=%s", bookingID, payload.Status, actor.ID)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), actor, bookingID, entities.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("[booking][handler] update-status failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(updated))
}

func (h *BookingHandler) UpdateUserCompletion(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	bookingID := c.Param("bookingId")

	log.Printf("[booking][handler] user-completion start booking_id=%s actor_id=%s", bookingID, actor.ID)
	updated, err := h.usecase.UpdateUserCompletion(c.Request.Context(), actor, bookingID)
	if err != nil {
		log.Printf("[booking][handler] user-completion failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(updated))
}

func (h *BookingHandler) ListByWorker(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	bookings, err := h.usecase.ListByWorker(c.Request.Context(), actor, c.Param("workerId"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	bookings, err := h.usecase.ListByUser(c.Request.Context(), actor, c.Param("userId"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingBookingFields), errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserRoleRequired), errors.Is(err, usecase.ErrWorkerRoleRequired), errors.Is(err, usecase.ErrNotBookingOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not authorized to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotAccepted):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_ACCEPTED", "Booking must be accepted before marking as completed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBookingNotPending):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PENDING", "Booking has already been accepted or rejected", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
