package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase/interfaces"
)

var (
	ErrPricingConfigNotFound = errors.New("pricing config not found")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
)

// IPricingUseCase exposes the admin pricing operations:
//   - global fare-formula defaults (payment management screen)
//   - per-vehicle-type fare fields and catalogue CRUD (issue pricing screen)

type IPricingUseCase interface {
	GetAllConfigs(ctx context.Context) ([]entities.PricingConfig, error)
	GetConfig(ctx context.Context, vehicleType string) (entities.PricingConfig, error)
	UpdateVehicle(ctx context.Context, vehicleType string, upd UpdateVehicleCommand) (entities.PricingConfig, error)

	AddIssue(ctx context.Context, vehicleType string, item entities.IssueItem) (entities.PricingConfig, error)
	UpdateIssue(ctx context.Context, vehicleType, issueID string, patch entities.IssuePatch) (entities.PricingConfig, error)
	DeleteIssue(ctx context.Context, vehicleType, issueID string) (entities.PricingConfig, error)

	AddEmergencyService(ctx context.Context, vehicleType string, item entities.EmergencyServiceItem) (entities.PricingConfig, error)
	UpdateEmergencyService(ctx context.Context, vehicleType, serviceID string, patch entities.EmergencyServicePatch) (entities.PricingConfig, error)
	DeleteEmergencyService(ctx context.Context, vehicleType, serviceID string) (entities.PricingConfig, error)

	GetGlobalPricing(ctx context.Context) (entities.GlobalPricing, error)
	UpdateGlobalPricing(ctx context.Context, gp entities.GlobalPricing) (entities.GlobalPricing, error)

	SeedDefaults(ctx context.Context) error
}

// UpdateVehicleCommand patches the fare-formula fields of one vehicle-type
// config. Nil fields are left untouched; the merged config is re-validated
// before the save, so no partial write can violate an invariant.

type UpdateVehicleCommand struct {
	BaseFare              *entities.Money
	PricePerKm            *entities.Money
	MinimumFare           *entities.Money
	EmergencySurcharge    *entities.Money
	SurgeMultiplier       *float64
	PlatformCommissionPct *float64
	MechanicCommissionPct *float64
	OtherIssueBasePrice   *entities.Money
}

type PricingUseCase struct {
	repo interfaces.IPricingConfigRepository
	now  func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingConfigRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PricingUseCase) GetAllConfigs(ctx context.Context) ([]entities.PricingConfig, error) {
	return u.repo.GetAll(ctx)
}

func (u *PricingUseCase) GetConfig(ctx context.Context, vehicleType string) (entities.PricingConfig, error) {
	vt, err := parseVehicleType(vehicleType)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	cfg, err := u.repo.GetByVehicleType(ctx, vt)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if cfg.VehicleType == "" {
		return entities.PricingConfig{}, ErrPricingConfigNotFound
	}
	return cfg, nil
}

func (u *PricingUseCase) UpdateVehicle(ctx context.Context, vehicleType string, upd UpdateVehicleCommand) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		if upd.BaseFare != nil {
			cfg.BaseFare = *upd.BaseFare
		}
		if upd.PricePerKm != nil {
			cfg.PricePerKm = *upd.PricePerKm
		}
		if upd.MinimumFare != nil {
			cfg.MinimumFare = *upd.MinimumFare
		}
		if upd.EmergencySurcharge != nil {
			cfg.EmergencySurcharge = *upd.EmergencySurcharge
		}
		if upd.SurgeMultiplier != nil {
			cfg.SurgeMultiplier = *upd.SurgeMultiplier
		}
		if upd.PlatformCommissionPct != nil {
			cfg.PlatformCommissionPct = *upd.PlatformCommissionPct
		}
		if upd.MechanicCommissionPct != nil {
			cfg.MechanicCommissionPct = *upd.MechanicCommissionPct
		}
		if upd.OtherIssueBasePrice != nil {
			cfg.OtherIssueBasePrice = *upd.OtherIssueBasePrice
		}
		return nil
	})
}

func (u *PricingUseCase) AddIssue(ctx context.Context, vehicleType string, item entities.IssueItem) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.AddIssue(item)
	})
}

func (u *PricingUseCase) UpdateIssue(ctx context.Context, vehicleType, issueID string, patch entities.IssuePatch) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.UpdateIssue(strings.TrimSpace(issueID), patch)
	})
}

func (u *PricingUseCase) DeleteIssue(ctx context.Context, vehicleType, issueID string) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.DeleteIssue(strings.TrimSpace(issueID))
	})
}

func (u *PricingUseCase) AddEmergencyService(ctx context.Context, vehicleType string, item entities.EmergencyServiceItem) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.AddEmergencyService(item)
	})
}

func (u *PricingUseCase) UpdateEmergencyService(ctx context.Context, vehicleType, serviceID string, patch entities.EmergencyServicePatch) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.UpdateEmergencyService(strings.TrimSpace(serviceID), patch)
	})
}

func (u *PricingUseCase) DeleteEmergencyService(ctx context.Context, vehicleType, serviceID string) (entities.PricingConfig, error) {
	return u.mutateConfig(ctx, vehicleType, func(cfg *entities.PricingConfig) error {
		return cfg.DeleteEmergencyService(strings.TrimSpace(serviceID))
	})
}

// mutateConfig is the shared load -> mutate -> validate -> save path. The
// save writes the whole config, so each admin edit is one atomic write.
func (u *PricingUseCase) mutateConfig(ctx context.Context, vehicleType string, mutate func(*entities.PricingConfig) error) (entities.PricingConfig, error) {
	vt, err := parseVehicleType(vehicleType)
	if err != nil {
		return entities.PricingConfig{}, err
	}

	cfg, err := u.repo.GetByVehicleType(ctx, vt)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if cfg.VehicleType == "" {
		return entities.PricingConfig{}, ErrPricingConfigNotFound
	}

	if err := mutate(&cfg); err != nil {
		return entities.PricingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return entities.PricingConfig{}, err
	}

	cfg.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, cfg)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	log.Printf("[pricing][usecase] config saved vehicle_type=%s issues=%d emergency_services=%d", cfg.VehicleType, len(cfg.Issues), len(cfg.EmergencyServices))
	return saved, nil
}

func (u *PricingUseCase) GetGlobalPricing(ctx context.Context) (entities.GlobalPricing, error) {
	gp, err := u.repo.GetGlobal(ctx)
	if err != nil {
		return entities.GlobalPricing{}, err
	}
	if gp.UpdatedAt.IsZero() {
		return defaultGlobalPricing(), nil
	}
	return gp, nil
}

func (u *PricingUseCase) UpdateGlobalPricing(ctx context.Context, gp entities.GlobalPricing) (entities.GlobalPricing, error) {
	if err := gp.Validate(); err != nil {
		log.Printf("[pricing][usecase] global pricing rejected err=%v", err)
		return entities.GlobalPricing{}, err
	}
	gp.UpdatedAt = u.now()
	saved, err := u.repo.SaveGlobal(ctx, gp)
	if err != nil {
		return entities.GlobalPricing{}, err
	}
	log.Printf("[pricing][usecase] global pricing saved platform_pct=%.2f mechanic_pct=%.2f", gp.PlatformCommissionPct, gp.MechanicCommissionPct)
	return saved, nil
}

// SeedDefaults creates the four vehicle-type configs on first start. Existing
// configs are left alone, so reruns never clobber admin edits.
func (u *PricingUseCase) SeedDefaults(ctx context.Context) error {
	for _, cfg := range DefaultPricingConfigs(u.now()) {
		created, err := u.repo.CreateIfAbsent(ctx, cfg)
		if err != nil {
			return err
		}
		if created {
			log.Printf("[pricing][usecase] seeded default config vehicle_type=%s", cfg.VehicleType)
		}
	}
	return nil
}

func parseVehicleType(s string) (entities.VehicleType, error) {
	vt := entities.VehicleType(strings.ToLower(strings.TrimSpace(s)))
	if !vt.IsValid() {
		return "", ErrInvalidVehicleType
	}
	return vt, nil
}

func defaultGlobalPricing() entities.GlobalPricing {
	return entities.GlobalPricing{
		BaseFare:              10000, // Rs 100 in paise
		PricePerKm:            1500,
		MinimumFare:           20000,
		EmergencySurcharge:    10000,
		SurgeMultiplier:       1.0,
		PlatformCommissionPct: 20,
		MechanicCommissionPct: 80,
	}
}

// DefaultPricingConfigs are the seed configs, one per vehicle type. Amounts
// are in paise.
func DefaultPricingConfigs(seededAt time.Time) []entities.PricingConfig {
	base := defaultGlobalPricing()
	perType := map[entities.VehicleType]struct {
		baseFare, perKm, minimum entities.Money
	}{
		entities.VehicleTypeBike:    {8000, 1200, 15000},
		entities.VehicleTypeScooter: {8000, 1200, 15000},
		entities.VehicleTypeCar:     {15000, 2000, 30000},
		entities.VehicleTypeAuto:    {10000, 1500, 20000},
	}

	configs := make([]entities.PricingConfig, 0, len(entities.AllVehicleTypes))
	for _, vt := range entities.AllVehicleTypes {
		fares := perType[vt]
		configs = append(configs, entities.PricingConfig{
			VehicleType:           vt,
			BaseFare:              fares.baseFare,
			PricePerKm:            fares.perKm,
			MinimumFare:           fares.minimum,
			EmergencySurcharge:    base.EmergencySurcharge,
			SurgeMultiplier:       base.SurgeMultiplier,
			PlatformCommissionPct: base.PlatformCommissionPct,
			MechanicCommissionPct: base.MechanicCommissionPct,
			OtherIssueBasePrice:   25000,
			Issues: []entities.IssueItem{
				{ID: "flat_tyre", Label: "Flat Tyre", EstimatedPrice: 30000, IsActive: true},
				{ID: "battery_jump_start", Label: "Battery Jump Start", EstimatedPrice: 25000, IsActive: true},
				{ID: "engine_trouble", Label: "Engine Trouble", EstimatedPrice: 50000, IsActive: true},
			},
			EmergencyServices: []entities.EmergencyServiceItem{
				{ID: "towing", Label: "Towing", Price: 150000, Description: "Tow to nearest garage", EstimatedTime: "45 min", UrgencyLevel: entities.UrgencyHigh, IsActive: true},
				{ID: "fuel_delivery", Label: "Fuel Delivery", Price: 20000, Description: "Up to 5L of fuel", EstimatedTime: "30 min", UrgencyLevel: entities.UrgencyMedium, IsActive: true},
			},
			UpdatedAt: seededAt,
		})
	}
	return configs
}
