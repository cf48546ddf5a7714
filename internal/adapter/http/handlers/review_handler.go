package handlers

import (
	"errors"
	"log"
	"net/http"

	request "workbee/internal/adapter/http/dto/request"
	response "workbee/internal/adapter/http/dto/response"
	"workbee/internal/adapter/http/middleware"
	"workbee/internal/usecase"
	"workbee/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles HTTP requests for booking reviews.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.SubmitReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	log.Printf("[review][handler] submit start booking_id=%s actor_id=%s", payload.BookingID, actor.ID)
	created, err := h.usecase.Submit(c.Request.Context(), actor, usecase.SubmitReviewInput{
		BookingID: payload.BookingID,
		Rating:    payload.Rating,
		Feedback:  payload.Feedback,
	})
	if err != nil {
		log.Printf("[review][handler] submit failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(created))
}

func (h *ReviewHandler) ListByBooking(c *gin.Context) {
	reviews, err := h.usecase.ListByBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewRating), errors.Is(err, usecase.ErrMissingReviewFeedback), errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserRoleRequired), errors.Is(err, usecase.ErrNotBookingOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not authorized to review this booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_EXISTS", "You have already reviewed this booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotPaid):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAID", "You can only review completed and paid bookings", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
