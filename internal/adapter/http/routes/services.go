package routes

import (
	"workbee/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices      = "/services"
	PathNotifications = "/notifications"
	PathWebSocket     = "/ws"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, authenticate gin.HandlerFunc) {
	services := rg.Group(PathServices)
	{
		// Catalog reads are public; listing management needs a worker token.
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.GET("/worker/:workerId", serviceHandler.ListByWorker)
		services.POST("", authenticate, serviceHandler.CreateService)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, wsHandler *handlers.WebSocketHandler, authenticate gin.HandlerFunc) {
	rg.GET(PathNotifications, authenticate, notificationHandler.ListNotifications)
	rg.GET(PathWebSocket, authenticate, wsHandler.Subscribe)
}
