package routes

import (
	"workbee/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathReviews  = "/reviews"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, authenticate gin.HandlerFunc) {
	bookings := rg.Group(PathBookings, authenticate)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/worker/:workerId", bookingHandler.ListByWorker)
		bookings.GET("/user/:userId", bookingHandler.ListByUser)
		bookings.PATCH("/:bookingId/status", bookingHandler.UpdateBookingStatus)
		bookings.PATCH("/:bookingId/complete", bookingHandler.UpdateUserCompletion)
	}
}

func addReviewRoutes(rg *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, authenticate gin.HandlerFunc) {
	reviews := rg.Group(PathReviews)
	{
		reviews.POST("", authenticate, reviewHandler.SubmitReview)
		reviews.GET("/booking/:bookingId", reviewHandler.ListByBooking)
	}
}
