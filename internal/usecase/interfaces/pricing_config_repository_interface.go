package interfaces

import (
	"context"

	"roadassist/internal/domain/entities"
)

// IPricingConfigRepository persists per-vehicle-type pricing configs and the
// global fare defaults. Save writes the whole config in one atomic put;
// concurrent edits to different vehicle types are independent.
//
// Absent records are reported as zero-value entities with a nil error.
type IPricingConfigRepository interface {
	GetByVehicleType(ctx context.Context, vt entities.VehicleType) (entities.PricingConfig, error)
	GetAll(ctx context.Context) ([]entities.PricingConfig, error)
	Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
	// CreateIfAbsent seeds a config without overwriting admin edits; it
	// reports whether the write happened.
	CreateIfAbsent(ctx context.Context, cfg entities.PricingConfig) (bool, error)
	GetGlobal(ctx context.Context) (entities.GlobalPricing, error)
	SaveGlobal(ctx context.Context, gp entities.GlobalPricing) (entities.GlobalPricing, error)
}
