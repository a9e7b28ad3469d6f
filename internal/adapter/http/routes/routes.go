package routes

import (
	"log"
	"time"

	_ "styledecor/docs" // This will be auto-generated
	"styledecor/internal/adapter/http/handlers"
	repository2 "styledecor/internal/adapter/persistence/repository"
	"styledecor/internal/infrastructure/auth"
	"styledecor/internal/infrastructure/config"
	"styledecor/internal/infrastructure/database"
	"styledecor/internal/infrastructure/payments"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.App) {
	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.StripeSecretKey)
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	userUseCase := usecase.NewUserUseCase(userRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, serviceRepo, cfg.ProjectStatusStrict)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, paymentGateway, cfg.PaymentCurrency)

	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addServiceRoutes(v1, serviceHandler, tokens)
	addBookingRoutes(v1, bookingHandler, tokens)
	addPaymentRoutes(v1, paymentHandler, tokens)
	addUserRoutes(v1, userHandler, tokens)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
