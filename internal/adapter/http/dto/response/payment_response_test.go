package response

import (
	"testing"
	"time"

	"roadassist/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	collected := now.Add(-time.Hour)

	p := entities.PaymentRecord{
		ID:                    "pay-1",
		ServiceRequestRef:     "sr-1",
		CustomerRef:           "cust-1",
		MechanicRef:           "mech-1",
		VehicleType:           entities.VehicleTypeBike,
		PaymentMethod:         entities.PaymentMethodCOD,
		PaymentStatus:         entities.StatusCODCollected,
		TotalAmount:           700,
		PlatformCommissionPct: 20,
		PlatformAmount:        140,
		MechanicAmount:        560,
		CODCollectedAt:        &collected,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	res := FromPaymentRecord(p)
	if res.ID != "pay-1" || res.ServiceRequestRef != "sr-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.PaymentMethod != "cod" || res.PaymentStatus != "cod_collected" {
		t.Fatalf("unexpected method/status: %+v", res)
	}
	if res.TotalAmount != 700 || res.PlatformAmount != 140 || res.MechanicAmount != 560 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.CODCollectedAt == nil || !res.CODCollectedAt.Equal(collected) {
		t.Fatalf("unexpected collected timestamp: %+v", res.CODCollectedAt)
	}
	if res.CODSettledAt != nil {
		t.Fatalf("settled timestamp must be omitted: %+v", res.CODSettledAt)
	}
}

func TestFromPaymentRecords(t *testing.T) {
	records := []entities.PaymentRecord{
		{ID: "pay-1", ServiceRequestRef: "sr-1"},
		{ID: "pay-2", ServiceRequestRef: "sr-2"},
	}

	res := FromPaymentRecords(records, 2, 20, 42)
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Page != 2 || res.Limit != 20 || res.Total != 42 {
		t.Fatalf("unexpected paging: %+v", res)
	}
	if res.Items[0].ID != "pay-1" || res.Items[1].ID != "pay-2" {
		t.Fatalf("unexpected order: %+v", res.Items)
	}
}

func TestFromPaymentRecordsEmpty(t *testing.T) {
	res := FromPaymentRecords(nil, 1, 20, 0)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("items must serialize as an empty list, got %#v", res.Items)
	}
}
