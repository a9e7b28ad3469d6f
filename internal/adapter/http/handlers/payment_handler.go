package handlers

import (
	"errors"
	"log"
	"net/http"

	request "styledecor/internal/adapter/http/dto/request"
	response "styledecor/internal/adapter/http/dto/response"
	"styledecor/internal/adapter/http/middleware"
	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase"
	"styledecor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment intents and records.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent asks the gateway for a client-confirmable payment intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	intent, err := h.usecase.BeginPaymentIntent(c.Request.Context(), actor, payload.BookingID, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] intent failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] intent created booking_id=%s intent_id=%s", payload.BookingID, intent.IntentID)

	c.JSON(http.StatusOK, response.OK(response.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		IntentID:     intent.IntentID,
	}))
}

// Confirm records a client-confirmed intent and marks the booking paid.
// Replaying the same intent returns the already-recorded payment.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	p, err := h.usecase.ConfirmPayment(c.Request.Context(), actor, payload.BookingID, payload.PaymentIntentID, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] confirm failed booking_id=%s intent=%s err=%v", payload.BookingID, payload.PaymentIntentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success booking_id=%s payment_id=%s", payload.BookingID, p.ID)

	c.JSON(http.StatusOK, response.OK(p))
}

// History returns the caller's payments, newest first.
func (h *PaymentHandler) History(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	payments, err := h.usecase.History(c.Request.Context(), actor)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payments == nil {
		payments = []entities.Payment{}
	}
	c.JSON(http.StatusOK, response.OK(payments))
}

// ListAll is the admin revenue view.
func (h *PaymentHandler) ListAll(c *gin.Context) {
	payments, revenue, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPayments(payments, revenue)))
}

func (h *PaymentHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	p, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentIntentRef),
		errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this payment", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", "Booking is already paid with a different payment intent", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotPayable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAYABLE", "Cancelled bookings cannot be paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
