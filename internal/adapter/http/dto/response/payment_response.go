package response

import (
	"time"

	"roadassist/internal/domain/entities"
)

type PaymentResponse struct {
	ID                    string  `json:"id"`
	ServiceRequestRef     string  `json:"service_request_ref"`
	CustomerRef           string  `json:"customer_ref"`
	MechanicRef           string  `json:"mechanic_ref,omitempty"`
	VehicleType           string  `json:"vehicle_type"`
	PaymentMethod         string  `json:"payment_method"`
	PaymentStatus         string  `json:"payment_status"`
	TotalAmount           int64   `json:"total_amount"`
	PlatformCommissionPct float64 `json:"platform_commission_pct"`
	PlatformAmount        int64   `json:"platform_amount"`
	MechanicAmount        int64   `json:"mechanic_amount"`
	GatewayOrderRef       string  `json:"gateway_order_ref,omitempty"`
	GatewayPaymentRef     string  `json:"gateway_payment_ref,omitempty"`

	CODCollectedAt *time.Time `json:"cod_collected_at,omitempty"`
	CODSettledAt   *time.Time `json:"cod_settled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:                    p.ID,
		ServiceRequestRef:     p.ServiceRequestRef,
		CustomerRef:           p.CustomerRef,
		MechanicRef:           p.MechanicRef,
		VehicleType:           string(p.VehicleType),
		PaymentMethod:         string(p.PaymentMethod),
		PaymentStatus:         string(p.PaymentStatus),
		TotalAmount:           int64(p.TotalAmount),
		PlatformCommissionPct: p.PlatformCommissionPct,
		PlatformAmount:        int64(p.PlatformAmount),
		MechanicAmount:        int64(p.MechanicAmount),
		GatewayOrderRef:       p.GatewayOrderRef,
		GatewayPaymentRef:     p.GatewayPaymentRef,
		CODCollectedAt:        p.CODCollectedAt,
		CODSettledAt:          p.CODSettledAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// PaymentListResponse pages the admin payment listing.

type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}

func FromPaymentRecords(records []entities.PaymentRecord, page, limit, total int) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(records))
	for _, p := range records {
		items = append(items, FromPaymentRecord(p))
	}
	return PaymentListResponse{Items: items, Page: page, Limit: limit, Total: total}
}
