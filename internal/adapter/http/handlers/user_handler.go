package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "styledecor/internal/adapter/http/dto/request"
	response "styledecor/internal/adapter/http/dto/response"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase"
	"styledecor/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for profiles, account
// administration and decorator discovery.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Me returns the calling user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	user, err := h.usecase.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}

// ListAll is the admin account directory.
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if users == nil {
		users = []entities.User{}
	}
	c.JSON(http.StatusOK, response.OK(users))
}

func (h *UserHandler) MakeDecorator(c *gin.Context) {
	var payload request.MakeDecoratorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	id := c.Param("id")
	user, err := h.usecase.MakeDecorator(c.Request.Context(), id, entities.DecoratorInfo{
		Specialty:  payload.Specialty,
		Experience: payload.Experience,
		Rating:     payload.Rating,
	})
	if err != nil {
		log.Printf("[user][handler] make-decorator failed user_id=%s err=%v", id, err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[user][handler] make-decorator success user_id=%s", id)

	c.JSON(http.StatusOK, response.OK(user))
}

// ToggleStatus flips an account between active and disabled.
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")
	user, err := h.usecase.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[user][handler] toggle-status failed user_id=%s err=%v", id, err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[user][handler] toggle-status success user_id=%s status=%s", id, user.Status)

	c.JSON(http.StatusOK, response.OK(user))
}

// ListDecorators is the public decorator directory.
func (h *UserHandler) ListDecorators(c *gin.Context) {
	decorators, err := h.usecase.ListDecorators(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if decorators == nil {
		decorators = []entities.User{}
	}
	c.JSON(http.StatusOK, response.OK(decorators))
}

// TopDecorators returns the best-rated active decorators.
func (h *UserHandler) TopDecorators(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	decorators, err := h.usecase.TopDecorators(c.Request.Context(), limit)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if decorators == nil {
		decorators = []entities.User{}
	}
	c.JSON(http.StatusOK, response.OK(decorators))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
