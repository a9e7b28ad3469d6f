package routes

import (
	"styledecor/internal/adapter/http/handlers"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, tokens *auth.TokenManager) {
	payments := rg.Group(PathPayments)
	payments.Use(middleware.JWTAuth(tokens))
	{
		payments.POST("/create-payment-intent", paymentHandler.CreateIntent)
		payments.POST("/confirm-payment", paymentHandler.Confirm)
		payments.GET("/history", paymentHandler.History)
		payments.GET("/:id", paymentHandler.Get)
	}

	admin := rg.Group(PathPayments)
	admin.Use(middleware.JWTAuth(tokens), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/all", paymentHandler.ListAll)
	}
}
