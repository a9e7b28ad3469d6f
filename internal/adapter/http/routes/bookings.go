package routes

import (
	"styledecor/internal/adapter/http/handlers"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, tokens *auth.TokenManager) {
	bookings := rg.Group(PathBookings)
	bookings.Use(middleware.JWTAuth(tokens))
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/my-bookings", bookingHandler.ListMine)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.PUT("/:id", bookingHandler.Update)
		bookings.DELETE("/:id", bookingHandler.Cancel)
	}

	decorator := rg.Group(PathBookings)
	decorator.Use(middleware.JWTAuth(tokens), middleware.RequireRole(entities.RoleDecorator, entities.RoleAdmin))
	{
		decorator.GET("/decorator/assigned", bookingHandler.ListAssigned)
		decorator.PUT("/:id/project-status", bookingHandler.UpdateProjectStatus)
	}

	admin := rg.Group(PathBookings)
	admin.Use(middleware.JWTAuth(tokens), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/all", bookingHandler.ListAll)
		admin.POST("/:id/assign-decorator", bookingHandler.AssignDecorator)
	}
}
