package routes

import (
	"log"

	_ "workbee/docs" // swag-generated
	"workbee/internal/adapter/http/handlers"
	"workbee/internal/adapter/http/middleware"
	"workbee/internal/adapter/persistence/repository"
	appconfig "workbee/internal/infrastructure/config"
	"workbee/internal/infrastructure/database"
	"workbee/internal/infrastructure/realtime"
	"workbee/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.App) {
	ddb := database.ConnectDynamoDB(cfg)

	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable)
	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable)
	reviewRepo := repository.NewReviewDynamoRepository(ddb, cfg.ReviewsTable)

	hub := realtime.NewHub()

	dispatcher := usecase.NewNotificationUseCase(notificationRepo, hub)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, serviceRepo, dispatcher)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, bookingRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	notificationHandler := handlers.NewNotificationHandler(dispatcher)
	wsHandler := handlers.NewWebSocketHandler(hub)

	authenticate := middleware.Authenticate(cfg.JWTSecret)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, serviceHandler, authenticate)
	addBookingRoutes(v1, bookingHandler, authenticate)
	addReviewRoutes(v1, reviewHandler, authenticate)
	addNotificationRoutes(v1, notificationHandler, wsHandler, authenticate)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
