package routes

import (
	"styledecor/internal/adapter/http/handlers"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, tokens *auth.TokenManager) {
	// The catalog is browsable without authentication.
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.List)
		services.GET("/meta/categories", serviceHandler.Categories)
		services.GET("/:id", serviceHandler.Get)
	}

	admin := rg.Group(PathServices)
	admin.Use(middleware.JWTAuth(tokens), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.POST("", serviceHandler.Create)
		admin.PUT("/:id", serviceHandler.Update)
		admin.DELETE("/:id", serviceHandler.Delete)
	}
}
