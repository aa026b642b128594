package repository

import (
	"context"
	"sort"
	"sync"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase/interfaces"
)

// In-memory repositories backing PERSISTENCE_MODE=memory. They keep the
// same compare-and-swap semantics as the DynamoDB implementations so the
// service behaves identically in local runs and under test.

type PaymentMemoryRepository struct {
	mu      sync.Mutex
	records map[string]entities.PaymentRecord
	events  []entities.PaymentEvent
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{
		records: make(map[string]entities.PaymentRecord),
	}
}

func (r *PaymentMemoryRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[p.ID]; exists {
		return entities.PaymentRecord{}, entities.ErrDuplicateID
	}
	r.records[p.ID] = clonePayment(p)
	return p, nil
}

func (r *PaymentMemoryRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.records[id]
	if !ok {
		return entities.PaymentRecord{}, nil
	}
	return clonePayment(p), nil
}

func (r *PaymentMemoryRepository) GetByServiceRequestRef(ctx context.Context, ref string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.records {
		if p.ServiceRequestRef == ref {
			return clonePayment(p), nil
		}
	}
	return entities.PaymentRecord{}, nil
}

func (r *PaymentMemoryRepository) List(ctx context.Context, f entities.PaymentListFilter) ([]entities.PaymentRecord, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]entities.PaymentRecord, 0, len(r.records))
	for _, p := range r.records {
		if f.PaymentMethod != "" && p.PaymentMethod != f.PaymentMethod {
			continue
		}
		if f.PaymentStatus != "" && p.PaymentStatus != f.PaymentStatus {
			continue
		}
		filtered = append(filtered, clonePayment(p))
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := (f.Page - 1) * f.Limit
	if start >= total {
		return []entities.PaymentRecord{}, total, nil
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (r *PaymentMemoryRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]entities.PaymentRecord, 0, len(r.records))
	for _, p := range r.records {
		if p.PaymentStatus == status {
			matched = append(matched, clonePayment(p))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *PaymentMemoryRepository) UpdateStatus(ctx context.Context, p entities.PaymentRecord, fromStatus entities.PaymentStatus, fromVersion int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[p.ID]
	if !ok {
		return false, nil
	}
	if current.PaymentStatus != fromStatus || current.Version != fromVersion {
		return false, nil
	}
	r.records[p.ID] = clonePayment(p)
	return true, nil
}

func (r *PaymentMemoryRepository) AppendEvent(ctx context.Context, e entities.PaymentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of the audit trail for a payment, oldest first.
func (r *PaymentMemoryRepository) Events(paymentID string) []entities.PaymentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.PaymentEvent, 0, len(r.events))
	for _, e := range r.events {
		if e.PaymentID == paymentID {
			out = append(out, e)
		}
	}
	return out
}

func (r *PaymentMemoryRepository) Stats(ctx context.Context) (entities.PaymentStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]entities.PaymentRecord, 0, len(r.records))
	for _, p := range r.records {
		all = append(all, p)
	}
	return aggregateStats(all), nil
}

func clonePayment(p entities.PaymentRecord) entities.PaymentRecord {
	out := p
	if p.CODCollectedAt != nil {
		t := *p.CODCollectedAt
		out.CODCollectedAt = &t
	}
	if p.CODSettledAt != nil {
		t := *p.CODSettledAt
		out.CODSettledAt = &t
	}
	return out
}

type PricingConfigMemoryRepository struct {
	mu      sync.Mutex
	configs map[entities.VehicleType]entities.PricingConfig
	global  *entities.GlobalPricing
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigMemoryRepository)(nil)

func NewPricingConfigMemoryRepository() *PricingConfigMemoryRepository {
	return &PricingConfigMemoryRepository{
		configs: make(map[entities.VehicleType]entities.PricingConfig),
	}
}

func (r *PricingConfigMemoryRepository) GetByVehicleType(ctx context.Context, vt entities.VehicleType) (entities.PricingConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[vt]
	if !ok {
		return entities.PricingConfig{}, nil
	}
	return clonePricingConfig(cfg), nil
}

func (r *PricingConfigMemoryRepository) GetAll(ctx context.Context) ([]entities.PricingConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.PricingConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, clonePricingConfig(cfg))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].VehicleType < out[j].VehicleType
	})
	return out, nil
}

func (r *PricingConfigMemoryRepository) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configs[cfg.VehicleType] = clonePricingConfig(cfg)
	return cfg, nil
}

func (r *PricingConfigMemoryRepository) CreateIfAbsent(ctx context.Context, cfg entities.PricingConfig) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[cfg.VehicleType]; exists {
		return false, nil
	}
	r.configs[cfg.VehicleType] = clonePricingConfig(cfg)
	return true, nil
}

func (r *PricingConfigMemoryRepository) GetGlobal(ctx context.Context) (entities.GlobalPricing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.global == nil {
		return entities.GlobalPricing{}, nil
	}
	return *r.global, nil
}

func (r *PricingConfigMemoryRepository) SaveGlobal(ctx context.Context, g entities.GlobalPricing) (entities.GlobalPricing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := g
	r.global = &copied
	return g, nil
}

func clonePricingConfig(cfg entities.PricingConfig) entities.PricingConfig {
	out := cfg
	out.Issues = append([]entities.IssueItem(nil), cfg.Issues...)
	out.EmergencyServices = append([]entities.EmergencyServiceItem(nil), cfg.EmergencyServices...)
	return out
}
