package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase"
)

func seedCODPayment(t *testing.T, repo *PaymentMemoryRepository, id, ref string) entities.PaymentRecord {
	t.Helper()
	collected := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := entities.PaymentRecord{
		ID:                    id,
		ServiceRequestRef:     ref,
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
		CreatedAt:             collected.Add(-time.Hour),
		UpdatedAt:             collected,
	}
	if _, err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}

func TestPaymentMemoryRepositoryUpdateStatusCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMemoryRepository()
	p := seedCODPayment(t, repo, "pay-1", "sr-1")

	updated := p
	updated.PaymentStatus = entities.StatusSettled
	updated.Version = p.Version + 1

	ok, err := repo.UpdateStatus(ctx, updated, p.PaymentStatus, p.Version)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if !ok {
		t.Fatal("expected first conditional write to win")
	}

	// Same precondition again must lose: status and version have moved on.
	ok, err = repo.UpdateStatus(ctx, updated, p.PaymentStatus, p.Version)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if ok {
		t.Fatal("expected stale conditional write to lose")
	}

	got, err := repo.GetByID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PaymentStatus != entities.StatusSettled || got.Version != 2 {
		t.Fatalf("got status=%s version=%d, want settled version=2", got.PaymentStatus, got.Version)
	}
}

func TestPaymentMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMemoryRepository()
	seedCODPayment(t, repo, "pay-1", "sr-1")

	got, _ := repo.GetByID(ctx, "pay-1")
	got.PaymentStatus = entities.StatusSettled
	got.TotalAmount = 0

	again, _ := repo.GetByID(ctx, "pay-1")
	if again.PaymentStatus != entities.StatusCODCollected || again.TotalAmount != 700 {
		t.Fatal("mutating a returned record must not affect the store")
	}
}

func TestPaymentMemoryRepositoryListFilterAndPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMemoryRepository()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, method := range []entities.PaymentMethod{entities.PaymentMethodCOD, entities.PaymentMethodOnline, entities.PaymentMethodCOD} {
		p := entities.PaymentRecord{
			ID:                "pay-" + string(rune('a'+i)),
			ServiceRequestRef: "sr-" + string(rune('a'+i)),
			PaymentMethod:     method,
			PaymentStatus:     entities.StatusPending,
			TotalAmount:       100,
			CreatedAt:         base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:         base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, total, err := repo.List(ctx, entities.PaymentListFilter{
		Page:          1,
		Limit:         1,
		PaymentMethod: entities.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if len(page) != 1 || page[0].ID != "pay-c" {
		t.Fatalf("page = %+v, want newest cod payment first", page)
	}

	page, total, err = repo.List(ctx, entities.PaymentListFilter{Page: 5, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(page) != 0 {
		t.Fatalf("out-of-range page: total=%d len=%d", total, len(page))
	}
}

func TestPaymentMemoryRepositoryStats(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMemoryRepository()
	seedCODPayment(t, repo, "pay-1", "sr-1")
	seedCODPayment(t, repo, "pay-2", "sr-2")

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalCount != 2 || stats.TotalAmount != 1400 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.PendingCODAmount != 1400 {
		t.Fatalf("pending cod = %d, want 1400", stats.PendingCODAmount)
	}
	if stats.CountByStatus[entities.StatusCODCollected] != 2 {
		t.Fatalf("count by status = %v", stats.CountByStatus)
	}
}

// Concurrent settlements of the same payment through the full usecase:
// exactly one goroutine wins the conditional write, every loser observes
// the settled record and reports ErrAlreadySettled.
func TestConcurrentSettleExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMemoryRepository()
	pricingRepo := NewPricingConfigMemoryRepository()
	uc := usecase.NewPaymentUseCase(repo, pricingRepo, nil)

	seedCODPayment(t, repo, "pay-1", "sr-1")

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Settle(ctx, "sr-1")
		}(i)
	}
	wg.Wait()

	var wins, already int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, usecase.ErrAlreadySettled):
			already++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("wins = %d, want exactly 1", wins)
	}
	if already != workers-1 {
		t.Fatalf("already settled = %d, want %d", already, workers-1)
	}

	got, err := repo.GetByID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PaymentStatus != entities.StatusSettled {
		t.Fatalf("status = %s, want settled", got.PaymentStatus)
	}
	if got.Version != 2 {
		t.Fatalf("version = %d, want 2", got.Version)
	}
	if got.CODSettledAt == nil {
		t.Fatal("settled payment must carry a settlement timestamp")
	}
}

func TestPricingConfigMemoryRepositoryCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewPricingConfigMemoryRepository()

	cfg := entities.PricingConfig{
		VehicleType:           entities.VehicleTypeCar,
		BaseFare:              20000,
		PricePerKm:            2500,
		MinimumFare:           30000,
		SurgeMultiplier:       1,
		PlatformCommissionPct: 20,
		MechanicCommissionPct: 80,
	}
	created, err := repo.CreateIfAbsent(ctx, cfg)
	if err != nil || !created {
		t.Fatalf("CreateIfAbsent = %v, %v", created, err)
	}

	cfg.BaseFare = 99999
	created, err = repo.CreateIfAbsent(ctx, cfg)
	if err != nil {
		t.Fatalf("CreateIfAbsent: %v", err)
	}
	if created {
		t.Fatal("second CreateIfAbsent must not overwrite")
	}

	got, err := repo.GetByVehicleType(ctx, entities.VehicleTypeCar)
	if err != nil {
		t.Fatalf("GetByVehicleType: %v", err)
	}
	if got.BaseFare != 20000 {
		t.Fatalf("base fare = %d, want the original 20000", got.BaseFare)
	}
}

func TestPricingConfigMemoryRepositoryGlobal(t *testing.T) {
	ctx := context.Background()
	repo := NewPricingConfigMemoryRepository()

	got, err := repo.GetGlobal(ctx)
	if err != nil {
		t.Fatalf("GetGlobal: %v", err)
	}
	if got.BaseFare != 0 {
		t.Fatal("unset global pricing must come back zero-valued")
	}

	g := entities.GlobalPricing{
		BaseFare:              10000,
		PricePerKm:            1500,
		MinimumFare:           20000,
		EmergencySurcharge:    10000,
		SurgeMultiplier:       1,
		PlatformCommissionPct: 20,
		MechanicCommissionPct: 80,
		UpdatedAt:             time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if _, err := repo.SaveGlobal(ctx, g); err != nil {
		t.Fatalf("SaveGlobal: %v", err)
	}
	got, err = repo.GetGlobal(ctx)
	if err != nil {
		t.Fatalf("GetGlobal: %v", err)
	}
	if got != g {
		t.Fatalf("global = %+v, want %+v", got, g)
	}
}
