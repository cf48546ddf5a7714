package request

// SubmitReviewRequest is the payload accepted by POST /v1/reviews.
type SubmitReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Feedback  string `json:"feedback" binding:"required"`
}
