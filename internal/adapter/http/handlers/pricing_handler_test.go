package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadassist/internal/adapter/http/handlers/mocks"
	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func pricingRouter(h *PricingHandler) *gin.Engine {
	r := gin.New()
	admin := r.Group("/v1/admin")
	admin.GET("/pricing", h.GetAllConfigs)
	admin.GET("/pricing/:vehicle_type", h.GetConfig)
	admin.PUT("/pricing/:vehicle_type", h.UpdateConfig)
	admin.POST("/pricing/:vehicle_type/issues", h.AddIssue)
	admin.PUT("/pricing/:vehicle_type/issues/:issue_id", h.UpdateIssue)
	admin.DELETE("/pricing/:vehicle_type/issues/:issue_id", h.DeleteIssue)
	admin.GET("/payments/pricing", h.GetGlobalPricing)
	admin.PUT("/payments/pricing", h.UpdateGlobalPricing)
	return r
}

func TestPricingHandler_GetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid vehicle type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any(), "truck").Return(entities.PricingConfig{}, usecase.ErrInvalidVehicleType)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/pricing/truck", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any(), "bike").Return(entities.PricingConfig{}, usecase.ErrPricingConfigNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/pricing/bike", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any(), "bike").Return(entities.PricingConfig{
			VehicleType: entities.VehicleTypeBike,
			BaseFare:    8000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/pricing/bike", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				VehicleType string `json:"vehicle_type"`
				BaseFare    int64  `json:"base_fare"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Data.VehicleType != "bike" || resp.Data.BaseFare != 8000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPricingHandler_UpdateConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("commission mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().UpdateVehicle(gomock.Any(), "bike", gomock.Any()).Return(entities.PricingConfig{}, entities.ErrCommissionMismatch)

		body := `{"platform_commission_pct":61,"mechanic_commission_pct":40}`
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/pricing/bike", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "COMMISSION_MISMATCH" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("partial update forwards only set fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().UpdateVehicle(gomock.Any(), "bike", gomock.Any()).DoAndReturn(
			func(_ any, _ string, upd usecase.UpdateVehicleCommand) (entities.PricingConfig, error) {
				if upd.BaseFare == nil || *upd.BaseFare != 9000 {
					t.Fatalf("base fare not forwarded: %+v", upd)
				}
				if upd.SurgeMultiplier != nil || upd.PlatformCommissionPct != nil {
					t.Fatalf("unset fields must stay nil: %+v", upd)
				}
				return entities.PricingConfig{VehicleType: entities.VehicleTypeBike, BaseFare: 9000}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/pricing/bike", bytes.NewBufferString(`{"base_fare":9000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPricingHandler_AddIssue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().AddIssue(gomock.Any(), "bike", gomock.Any()).Return(entities.PricingConfig{}, entities.ErrDuplicateID)

		body := `{"label":"Flat Tyre","estimated_price":30000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/pricing/bike/issues", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("defaults to active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().AddIssue(gomock.Any(), "bike", entities.IssueItem{
			Label:          "Chain Slip",
			EstimatedPrice: 15000,
			IsActive:       true,
		}).Return(entities.PricingConfig{VehicleType: entities.VehicleTypeBike}, nil)

		body := `{"label":"Chain Slip","estimated_price":15000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/pricing/bike/issues", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPricingHandler_DeleteIssue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)
	r := pricingRouter(NewPricingHandler(uc))

	uc.EXPECT().DeleteIssue(gomock.Any(), "bike", "flat_tyre").Return(entities.PricingConfig{}, entities.ErrItemNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/pricing/bike/issues/flat_tyre", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPricingHandler_GlobalPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get returns defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().GetGlobalPricing(gomock.Any()).Return(entities.GlobalPricing{
			BaseFare:              10000,
			PlatformCommissionPct: 20,
			MechanicCommissionPct: 80,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/payments/pricing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update rejects bad split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().UpdateGlobalPricing(gomock.Any(), gomock.Any()).Return(entities.GlobalPricing{}, entities.ErrCommissionMismatch)

		body := `{"base_fare":10000,"price_per_km":1500,"minimum_fare":20000,"surge_multiplier":1,"platform_commission_pct":61,"mechanic_commission_pct":40}`
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/payments/pricing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(NewPricingHandler(uc))

		uc.EXPECT().UpdateGlobalPricing(gomock.Any(), entities.GlobalPricing{
			BaseFare:              12000,
			PricePerKm:            1800,
			MinimumFare:           22000,
			EmergencySurcharge:    10000,
			SurgeMultiplier:       1.2,
			PlatformCommissionPct: 25,
			MechanicCommissionPct: 75,
		}).Return(entities.GlobalPricing{
			BaseFare:              12000,
			PricePerKm:            1800,
			MinimumFare:           22000,
			EmergencySurcharge:    10000,
			SurgeMultiplier:       1.2,
			PlatformCommissionPct: 25,
			MechanicCommissionPct: 75,
		}, nil)

		body := `{"base_fare":12000,"price_per_km":1800,"minimum_fare":22000,"emergency_surcharge":10000,"surge_multiplier":1.2,"platform_commission_pct":25,"mechanic_commission_pct":75}`
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/payments/pricing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
