package handlers

import (
	"errors"
	"net/http"

	response "workbee/internal/adapter/http/dto/response"
	"workbee/internal/adapter/http/middleware"
	"workbee/internal/usecase"
	"workbee/internal/usecase/interfaces"
	"workbee/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the persisted notification feed. The real-time
// path is the websocket handler; this one backs the dashboard poll/fetch.

type NotificationHandler struct {
	dispatcher interfaces.INotificationDispatcher
}

func NewNotificationHandler(dispatcher interfaces.INotificationDispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// ListNotifications returns the authenticated actor's notifications, newest
// first. Recipients can only read their own feed.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	notifications, err := h.dispatcher.ListFor(c.Request.Context(), actor.ID)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
