package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roadassist/internal/adapter/http/handlers/mocks"
	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	r.POST("/v1/payments/:payment_id/initiate", h.InitiatePayment)
	r.POST("/v1/payments/:payment_id/confirm", h.ConfirmPayment)
	r.POST("/v1/payments/:payment_id/cod/collect", h.CollectCOD)
	r.POST("/v1/admin/payments/settle/:service_request_id", h.SettlePayment)
	r.POST("/v1/admin/payments/settle-all", h.SettleAllPayments)
	r.GET("/v1/admin/payments", h.ListPayments)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"customer_ref":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate service request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, usecase.ErrPaymentAlreadyExists)

		body := `{"service_request_ref":"sr-1","customer_ref":"cust-1","vehicle_type":"bike","distance_km":10,"payment_method":"cod"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["success"] != false || resp["code"] != "PAYMENT_ALREADY_EXISTS" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), usecase.CreatePaymentCommand{
			ServiceRequestRef: "sr-1",
			CustomerRef:       "cust-1",
			VehicleType:       "bike",
			DistanceKm:        10,
			IssueID:           "flat_tyre",
			PaymentMethod:     entities.PaymentMethodOnline,
		}).Return(entities.PaymentRecord{
			ID:                "pay-1",
			ServiceRequestRef: "sr-1",
			PaymentMethod:     entities.PaymentMethodOnline,
			PaymentStatus:     entities.StatusPending,
			TotalAmount:       30250,
			PlatformAmount:    6050,
			MechanicAmount:    24200,
			CreatedAt:         now,
			UpdatedAt:         now,
		}, nil)

		body := `{"service_request_ref":"sr-1","customer_ref":"cust-1","vehicle_type":"bike","distance_km":10,"issue_id":"flat_tyre","payment_method":"online"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				ID             string `json:"id"`
				TotalAmount    int64  `json:"total_amount"`
				PlatformAmount int64  `json:"platform_amount"`
				MechanicAmount int64  `json:"mechanic_amount"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Data.ID != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if resp.Data.PlatformAmount+resp.Data.MechanicAmount != resp.Data.TotalAmount {
			t.Fatalf("split does not reconcile: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPaymentHandler_InitiatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().InitiateOnline(gomock.Any(), "pay-1").Return(entities.PaymentRecord{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().InitiateOnline(gomock.Any(), "pay-1").Return(entities.PaymentRecord{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().InitiateOnline(gomock.Any(), "pay-1").Return(entities.PaymentRecord{
			ID:              "pay-1",
			PaymentStatus:   entities.StatusInitiated,
			GatewayOrderRef: "order-9",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Data struct {
				PaymentStatus   string `json:"payment_status"`
				GatewayOrderRef string `json:"gateway_order_ref"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Data.PaymentStatus != "initiated" || resp.Data.GatewayOrderRef != "order-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing gateway ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ConfirmOnline(gomock.Any(), "pay-1", "mp-77").Return(entities.PaymentRecord{
			ID:            "pay-1",
			PaymentStatus: entities.StatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/confirm", bytes.NewBufferString(`{"gateway_payment_ref":"mp-77"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CollectCOD(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().CollectCOD(gomock.Any(), "pay-1", "mech-1").Return(entities.PaymentRecord{
		ID:            "pay-1",
		PaymentStatus: entities.StatusCODCollected,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/cod/collect", bytes.NewBufferString(`{"mechanic_ref":"mech-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_SettlePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Settle(gomock.Any(), "sr-1").Return(entities.PaymentRecord{}, usecase.ErrAlreadySettled)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/settle/sr-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "PAYMENT_ALREADY_SETTLED" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Settle(gomock.Any(), "sr-9").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/settle/sr-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		settledAt := time.Now().UTC()
		uc.EXPECT().Settle(gomock.Any(), "sr-1").Return(entities.PaymentRecord{
			ID:                "pay-1",
			ServiceRequestRef: "sr-1",
			PaymentStatus:     entities.StatusSettled,
			CODSettledAt:      &settledAt,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/settle/sr-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    struct {
				PaymentStatus string `json:"payment_status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Data.PaymentStatus != "settled" || resp.Message == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_SettleAllPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().SettleAll(gomock.Any()).Return([]usecase.SettlementResult{
		{ServiceRequestRef: "sr-a", Settled: true},
		{ServiceRequestRef: "sr-b", Message: "payment already settled"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/settle-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success bool                       `json:"success"`
		Data    []usecase.SettlementResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data) != 2 || !resp.Data[0].Settled || resp.Data[1].Settled {
		t.Fatalf("unexpected results: %s", w.Body.String())
	}
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().List(gomock.Any(), entities.PaymentListFilter{
		Page:          2,
		Limit:         10,
		PaymentMethod: entities.PaymentMethodCOD,
		PaymentStatus: entities.StatusCODCollected,
	}).Return([]entities.PaymentRecord{{ID: "pay-1"}}, 11, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/payments?page=2&limit=10&payment_method=cod&payment_status=cod_collected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Page  int `json:"page"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data.Items) != 1 || resp.Data.Page != 2 || resp.Data.Total != 11 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
