package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workbee/internal/adapter/http/handlers/mocks"
	"workbee/internal/domain/entities"
	"workbee/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_SubmitReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actor := entities.Actor{ID: "user-1", Role: entities.RoleUser, Name: "Asha"}

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", h.SubmitReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", withActor(actor), h.SubmitReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"booking_id":"bk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out-of-range rating maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", withActor(actor), h.SubmitReview)

		uc.EXPECT().Submit(gomock.Any(), actor, usecase.SubmitReviewInput{BookingID: "bk-1", Rating: 6, Feedback: "great"}).
			Return(entities.Review{}, usecase.ErrInvalidReviewRating)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"booking_id":"bk-1","rating":6,"feedback":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate review maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", withActor(actor), h.SubmitReview)

		uc.EXPECT().Submit(gomock.Any(), actor, gomock.Any()).Return(entities.Review{}, usecase.ErrReviewAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"booking_id":"bk-1","rating":5,"feedback":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "REVIEW_ALREADY_EXISTS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unpaid booking maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", withActor(actor), h.SubmitReview)

		uc.EXPECT().Submit(gomock.Any(), actor, gomock.Any()).Return(entities.Review{}, usecase.ErrBookingNotPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"booking_id":"bk-1","rating":5,"feedback":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", withActor(actor), h.SubmitReview)

		uc.EXPECT().Submit(gomock.Any(), actor, usecase.SubmitReviewInput{BookingID: "bk-1", Rating: 5, Feedback: "spotless"}).
			Return(entities.Review{ID: "rv-1", BookingID: "bk-1", UserID: "user-1", WorkerID: "worker-1", Rating: 5, Feedback: "spotless"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"booking_id":"bk-1","rating":5,"feedback":"spotless"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "rv-1" || body["rating"] != float64(5) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReviewHandler_ListByBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.GET("/v1/reviews/booking/:bookingId", h.ListByBooking)

		uc.EXPECT().ListByBooking(gomock.Any(), "bk-1").
			Return([]entities.Review{{ID: "rv-1", BookingID: "bk-1", Rating: 5}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/booking/bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "rv-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("blank booking id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.GET("/v1/reviews/booking/:bookingId", h.ListByBooking)

		uc.EXPECT().ListByBooking(gomock.Any(), " ").Return(nil, usecase.ErrInvalidBookingID)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/booking/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
