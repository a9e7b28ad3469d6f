package routes

import (
	"styledecor/internal/adapter/http/handlers"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers      = "/users"
	PathDecorators = "/decorators"
)

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, tokens *auth.TokenManager) {
	users := rg.Group(PathUsers)
	users.Use(middleware.JWTAuth(tokens))
	{
		users.GET("/profile", userHandler.Me)
	}

	admin := rg.Group(PathUsers)
	admin.Use(middleware.JWTAuth(tokens), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/all", userHandler.ListAll)
		admin.PUT("/:id/make-decorator", userHandler.MakeDecorator)
		admin.PUT("/:id/toggle-status", userHandler.ToggleStatus)
	}

	// The decorator directory is browsable without authentication.
	decorators := rg.Group(PathDecorators)
	{
		decorators.GET("", userHandler.ListDecorators)
		decorators.GET("/top", userHandler.TopDecorators)
	}
}
