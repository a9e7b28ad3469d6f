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

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ServiceID, payload.BookingDate, payload.Location, payload.Notes, payload.UserName)
	if err != nil {
		log.Printf("[booking][handler] create failed service_id=%s err=%v", payload.ServiceID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.OK(created))
}

func (h *BookingHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	b, err := h.usecase.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(b))
}

// ListMine returns the caller's bookings, newest first, paginated.
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	q := listQueryFrom(c)

	bookings, total, err := h.usecase.ListMine(c.Request.Context(), actor, q)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	c.JSON(http.StatusOK, response.OKPage(bookings, pageOf(q, total)))
}

// ListAll is the admin view over every booking, filterable by status.
func (h *BookingHandler) ListAll(c *gin.Context) {
	f := interfaces.BookingFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
	}
	q := listQueryFrom(c)

	bookings, total, err := h.usecase.ListAll(c.Request.Context(), f, q)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	c.JSON(http.StatusOK, response.OKPage(bookings, pageOf(q, total)))
}

// ListAssigned returns the bookings assigned to the calling decorator.
func (h *BookingHandler) ListAssigned(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	bookings, err := h.usecase.ListAssigned(c.Request.Context(), actor)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	c.JSON(http.StatusOK, response.OK(bookings))
}

func (h *BookingHandler) Update(c *gin.Context) {
	var payload request.BookingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	upd := usecase.BookingUpdate{
		BookingDate: payload.BookingDate,
		Location:    payload.Location,
		Notes:       payload.Notes,
	}
	updated, err := h.usecase.UpdateDetails(c.Request.Context(), actor, c.Param("id"), upd)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	cancelled, err := h.usecase.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[booking][handler] cancel failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] cancel success booking_id=%s", id)

	c.JSON(http.StatusOK, response.OK(cancelled))
}

func (h *BookingHandler) AssignDecorator(c *gin.Context) {
	var payload request.AssignDecoratorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	id := c.Param("id")
	ref := entities.DecoratorRef{
		ID:    payload.DecoratorID,
		Name:  payload.DecoratorName,
		Email: payload.DecoratorEmail,
	}

	assigned, err := h.usecase.AssignDecorator(c.Request.Context(), actor, id, ref)
	if err != nil {
		log.Printf("[booking][handler] assign failed booking_id=%s decorator=%s err=%v", id, ref.Email, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] assign success booking_id=%s decorator=%s", id, ref.Email)

	c.JSON(http.StatusOK, response.OK(assigned))
}

func (h *BookingHandler) UpdateProjectStatus(c *gin.Context) {
	var payload request.ProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	updated, err := h.usecase.AdvanceProjectStatus(c.Request.Context(), actor, c.Param("id"), entities.ProjectStatus(payload.ProjectStatus))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(updated))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidBookingDate),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidDecoratorRef),
		errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidBookingFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingAlreadyPaid):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_PAID", "Paid bookings require an administrator refund to cancel", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotCancellable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_CANCELLABLE", "Booking cannot be cancelled in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingUnpaid):
		return pkg.NewDomainErrorSimple("BOOKING_UNPAID", "Booking must be paid before a decorator is assigned", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotAssigned):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_ASSIGNED", "Booking has no assigned decorator", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectStatusRollback):
		return pkg.NewDomainErrorSimple("PROJECT_STATUS_ROLLBACK", "Project status cannot move backwards", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func listQueryFrom(c *gin.Context) interfaces.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return interfaces.ListQuery{
		Page:    page,
		Limit:   limit,
		SortKey: c.Query("sortBy"),
	}
}

func pageOf(q interfaces.ListQuery, total int) *response.Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	return response.NewPagination(total, page, limit)
}
