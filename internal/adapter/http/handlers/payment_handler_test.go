package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"styledecor/internal/adapter/http/handlers/mocks"
	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-payment-intent", withIdentity(testUser), h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-payment-intent", bytes.NewBufferString(`{"bookingId":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-payment-intent", withIdentity(testUser), h.CreateIntent)

		uc.EXPECT().
			BeginPaymentIntent(gomock.Any(), testUser, "bk-1", 50000.0).
			Return(interfaces.PaymentIntent{}, usecase.ErrPaymentGateway)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-payment-intent",
			bytes.NewBufferString(`{"bookingId":"bk-1","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns client secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-payment-intent", withIdentity(testUser), h.CreateIntent)

		uc.EXPECT().
			BeginPaymentIntent(gomock.Any(), testUser, "bk-1", 50000.0).
			Return(interfaces.PaymentIntent{IntentID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-payment-intent",
			bytes.NewBufferString(`{"bookingId":"bk-1","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				ClientSecret string `json:"clientSecret"`
				IntentID     string `json:"intentId"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if envelope.Data.ClientSecret != "pi_123_secret" || envelope.Data.IntentID != "pi_123" {
			t.Fatalf("unexpected envelope: %+v", envelope)
		}
	})
}

func TestPaymentHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/confirm-payment", withIdentity(testUser), h.Confirm)

		uc.EXPECT().
			ConfirmPayment(gomock.Any(), testUser, "bk-1", "pi_123", 50000.0).
			Return(entities.Payment{ID: "pay-1", BookingID: "bk-1", TransactionID: "pi_123", Amount: 50000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm-payment",
			bytes.NewBufferString(`{"bookingId":"bk-1","paymentIntentId":"pi_123","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var envelope struct {
			Success bool             `json:"success"`
			Data    entities.Payment `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if envelope.Data.ID != "pay-1" || envelope.Data.TransactionID != "pi_123" {
			t.Fatalf("unexpected envelope: %+v", envelope)
		}
	})

	t.Run("conflicting intent maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/confirm-payment", withIdentity(testUser), h.Confirm)

		uc.EXPECT().
			ConfirmPayment(gomock.Any(), testUser, "bk-1", "pi_999", 50000.0).
			Return(entities.Payment{}, usecase.ErrPaymentConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm-payment",
			bytes.NewBufferString(`{"bookingId":"bk-1","paymentIntentId":"pi_999","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancelled booking maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/confirm-payment", withIdentity(testUser), h.Confirm)

		uc.EXPECT().
			ConfirmPayment(gomock.Any(), testUser, "bk-1", "pi_123", 50000.0).
			Return(entities.Payment{}, usecase.ErrBookingNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm-payment",
			bytes.NewBufferString(`{"bookingId":"bk-1","paymentIntentId":"pi_123","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing booking maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/confirm-payment", withIdentity(testUser), h.Confirm)

		uc.EXPECT().
			ConfirmPayment(gomock.Any(), testUser, "missing", "pi_123", 50000.0).
			Return(entities.Payment{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm-payment",
			bytes.NewBufferString(`{"bookingId":"missing","paymentIntentId":"pi_123","amount":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/all", h.ListAll)

	uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Payment{
		{ID: "pay-1", Amount: 3000},
		{ID: "pay-2", Amount: 2000},
	}, 5000.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Payments     []entities.Payment `json:"payments"`
			Count        int                `json:"count"`
			TotalRevenue float64            `json:"totalRevenue"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if envelope.Data.Count != 2 || envelope.Data.TotalRevenue != 5000 {
		t.Fatalf("unexpected totals: %+v", envelope.Data)
	}
}
