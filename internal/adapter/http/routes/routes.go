package routes

import (
	"log"
	"strconv"

	"tripmarket/internal/adapter/http/handlers"
	"tripmarket/internal/adapter/http/middlewares"
	repository2 "tripmarket/internal/adapter/persistence/repository"
	"tripmarket/internal/infrastructure/config"
	"tripmarket/internal/infrastructure/database"
	"tripmarket/internal/infrastructure/notify"
	"tripmarket/internal/infrastructure/payments"
	"tripmarket/internal/usecase"
	"tripmarket/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.App) {
	ddb := database.ConnectDynamoDB()

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	rangeRepo := repository2.NewBlockedRangeDynamoRepository(ddb)
	directoryRepo := repository2.NewDirectoryDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.StripeSecretKey)
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		gateway = stripeGateway
	}
	verifier := payments.NewStripeWebhookVerifier(cfg.StripeWebhookSecret)

	var notifier interfaces.INotifier
	if cfg.AMQPURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Printf("Notifier not configured: %v", err)
		} else {
			notifier = amqpNotifier
		}
	}

	availabilityUseCase := usecase.NewAvailabilityUseCase(bookingRepo, rangeRepo, directoryRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, directoryRepo, gateway, notifier, cfg.Currency)
	adminUseCase := usecase.NewBookingAdminUseCase(bookingRepo, directoryRepo)
	webhookUseCase := usecase.NewWebhookUseCase(bookingRepo, verifier, notifier)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase, adminUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	resolveRole := middlewares.JWTRoleResolver(cfg.JWTSecret)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, availabilityHandler, webhookHandler, resolveRole)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
