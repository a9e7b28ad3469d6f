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
	"styledecor/internal/usecase/interfaces"
	"styledecor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for the decoration catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), actor.Email, serviceInputFrom(payload))
	if err != nil {
		log.Printf("[service][handler] create failed name=%s err=%v", payload.Name, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[service][handler] create success service_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.OK(created))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(s))
}

// List is the public catalog browse: free-text search, category and
// price-range filters, paginated.
func (h *ServiceHandler) List(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
	f := interfaces.ServiceFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
	q := listQueryFrom(c)

	services, total, err := h.usecase.List(c.Request.Context(), f, q)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if services == nil {
		services = []entities.Service{}
	}
	c.JSON(http.StatusOK, response.OKPage(services, pageOf(q, total)))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), serviceInputFrom(payload))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[service][handler] delete failed service_id=%s err=%v", id, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[service][handler] delete success service_id=%s", id)

	c.JSON(http.StatusOK, response.OKMessage("Service deleted"))
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, response.OK(categories))
}

func serviceInputFrom(payload request.ServiceRequest) usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:        payload.Name,
		Cost:        payload.Cost,
		Unit:        payload.Unit,
		Category:    payload.Category,
		Description: payload.Description,
		Image:       payload.Image,
	}
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrInvalidServiceCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
