package entities

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
)

// VehicleType identifies a pricing config. One config exists per type.

type VehicleType string

const (
	VehicleTypeBike    VehicleType = "bike"
	VehicleTypeScooter VehicleType = "scooter"
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeAuto    VehicleType = "auto"
)

// AllVehicleTypes lists the seeded configs in a stable order.
var AllVehicleTypes = []VehicleType{VehicleTypeBike, VehicleTypeScooter, VehicleTypeCar, VehicleTypeAuto}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTypeBike, VehicleTypeScooter, VehicleTypeCar, VehicleTypeAuto:
		return true
	}
	return false
}

type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
)

var (
	ErrDuplicateID        = errors.New("duplicate catalogue id")
	ErrItemNotFound       = errors.New("catalogue item not found")
	ErrCommissionMismatch = errors.New("commission percentages do not sum to 100")
)

// commissionTolerance bounds the accepted drift on the 100% sum check.
const commissionTolerance = 0.01

// IssueItem is a catalogued repair issue with a price estimate shown to
// customers before a mechanic is dispatched.

type IssueItem struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	EstimatedPrice Money  `json:"estimated_price"`
	IsActive       bool   `json:"is_active"`
}

type EmergencyServiceItem struct {
	ID            string       `json:"id"`
	Label         string       `json:"label"`
	Price         Money        `json:"price"`
	Description   string       `json:"description"`
	EstimatedTime string       `json:"estimated_time"`
	UrgencyLevel  UrgencyLevel `json:"urgency_level"`
	IsActive      bool         `json:"is_active"`
}

// PricingConfig is the per-vehicle-type fare and catalogue configuration.
//
// Payment records snapshot the amounts they were priced with at creation
// time, so later edits (including catalogue deletes) never rewrite history.

type PricingConfig struct {
	VehicleType           VehicleType            `json:"vehicle_type"`
	BaseFare              Money                  `json:"base_fare"`
	PricePerKm            Money                  `json:"price_per_km"`
	MinimumFare           Money                  `json:"minimum_fare"`
	EmergencySurcharge    Money                  `json:"emergency_surcharge"`
	SurgeMultiplier       float64                `json:"surge_multiplier"`
	PlatformCommissionPct float64                `json:"platform_commission_pct"`
	MechanicCommissionPct float64                `json:"mechanic_commission_pct"`
	Issues                []IssueItem            `json:"issues"`
	EmergencyServices     []EmergencyServiceItem `json:"emergency_services"`
	OtherIssueBasePrice   Money                  `json:"other_issue_base_price"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

// GlobalPricing holds the admin-wide fare formula defaults edited from the
// payment management screen. New vehicle configs seed from it.

type GlobalPricing struct {
	BaseFare              Money     `json:"base_fare"`
	PricePerKm            Money     `json:"price_per_km"`
	MinimumFare           Money     `json:"minimum_fare"`
	EmergencySurcharge    Money     `json:"emergency_surcharge"`
	SurgeMultiplier       float64   `json:"surge_multiplier"`
	PlatformCommissionPct float64   `json:"platform_commission_pct"`
	MechanicCommissionPct float64   `json:"mechanic_commission_pct"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (g GlobalPricing) Validate() error {
	if g.BaseFare < 0 || g.PricePerKm < 0 || g.MinimumFare < 0 || g.EmergencySurcharge < 0 {
		return ErrInvalidConfig
	}
	if math.IsNaN(g.SurgeMultiplier) || g.SurgeMultiplier < 1 || g.SurgeMultiplier > 5 {
		return ErrInvalidConfig
	}
	return validateCommissionSplit(g.PlatformCommissionPct, g.MechanicCommissionPct)
}

// Validate rejects any config that must not reach persistence. There is no
// clamping: out-of-range input fails the whole save.
func (c PricingConfig) Validate() error {
	if !c.VehicleType.IsValid() {
		return ErrInvalidConfig
	}
	if c.BaseFare < 0 || c.PricePerKm < 0 || c.MinimumFare < 0 || c.EmergencySurcharge < 0 || c.OtherIssueBasePrice < 0 {
		return ErrInvalidConfig
	}
	if math.IsNaN(c.SurgeMultiplier) || c.SurgeMultiplier < 1 || c.SurgeMultiplier > 5 {
		return ErrInvalidConfig
	}
	if err := validateCommissionSplit(c.PlatformCommissionPct, c.MechanicCommissionPct); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Issues))
	for _, it := range c.Issues {
		if it.ID == "" || seen[it.ID] {
			return ErrDuplicateID
		}
		seen[it.ID] = true
		if it.EstimatedPrice < 0 {
			return ErrInvalidPrice
		}
	}
	seen = make(map[string]bool, len(c.EmergencyServices))
	for _, es := range c.EmergencyServices {
		if es.ID == "" || seen[es.ID] {
			return ErrDuplicateID
		}
		seen[es.ID] = true
		if es.Price < 0 {
			return ErrInvalidPrice
		}
		if es.UrgencyLevel != UrgencyHigh && es.UrgencyLevel != UrgencyMedium {
			return ErrInvalidConfig
		}
	}
	return nil
}

func validateCommissionSplit(platformPct, mechanicPct float64) error {
	if math.IsNaN(platformPct) || platformPct < 0 || platformPct > 100 {
		return ErrInvalidPct
	}
	if math.IsNaN(mechanicPct) || mechanicPct < 0 || mechanicPct > 100 {
		return ErrInvalidPct
	}
	if math.Abs(platformPct+mechanicPct-100) > commissionTolerance {
		return ErrCommissionMismatch
	}
	return nil
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveItemID turns a display label into a catalogue id: lower-case, runs
// of anything outside [a-z0-9] become a single underscore, edges trimmed.
// Collisions are not suffixed here; the add path fails with ErrDuplicateID
// and the caller must supply an explicit id.
func DeriveItemID(label string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(label), "_")
	return strings.Trim(slug, "_")
}

// IssuePatch is a field-wise partial update; nil fields are left untouched.

type IssuePatch struct {
	Label          *string `json:"label"`
	EstimatedPrice *Money  `json:"estimated_price"`
	IsActive       *bool   `json:"is_active"`
}

type EmergencyServicePatch struct {
	Label         *string       `json:"label"`
	Price         *Money        `json:"price"`
	Description   *string       `json:"description"`
	EstimatedTime *string       `json:"estimated_time"`
	UrgencyLevel  *UrgencyLevel `json:"urgency_level"`
	IsActive      *bool         `json:"is_active"`
}

func (c *PricingConfig) findIssue(id string) int {
	for i := range c.Issues {
		if c.Issues[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *PricingConfig) findEmergencyService(id string) int {
	for i := range c.EmergencyServices {
		if c.EmergencyServices[i].ID == id {
			return i
		}
	}
	return -1
}

// Issue returns the catalogue entry for id, if present.
func (c *PricingConfig) Issue(id string) (IssueItem, bool) {
	if i := c.findIssue(id); i >= 0 {
		return c.Issues[i], true
	}
	return IssueItem{}, false
}

func (c *PricingConfig) EmergencyService(id string) (EmergencyServiceItem, bool) {
	if i := c.findEmergencyService(id); i >= 0 {
		return c.EmergencyServices[i], true
	}
	return EmergencyServiceItem{}, false
}

// AddIssue appends a catalogue issue. An empty id is derived from the label;
// either way a colliding id rejects the add without mutating the catalogue.
func (c *PricingConfig) AddIssue(item IssueItem) error {
	if item.ID == "" {
		item.ID = DeriveItemID(item.Label)
	}
	if item.ID == "" {
		return ErrInvalidConfig
	}
	if item.EstimatedPrice < 0 {
		return ErrInvalidPrice
	}
	if c.findIssue(item.ID) >= 0 {
		return ErrDuplicateID
	}
	c.Issues = append(c.Issues, item)
	return nil
}

func (c *PricingConfig) UpdateIssue(id string, patch IssuePatch) error {
	i := c.findIssue(id)
	if i < 0 {
		return ErrItemNotFound
	}
	if patch.EstimatedPrice != nil && *patch.EstimatedPrice < 0 {
		return ErrInvalidPrice
	}
	if patch.Label != nil {
		c.Issues[i].Label = *patch.Label
	}
	if patch.EstimatedPrice != nil {
		c.Issues[i].EstimatedPrice = *patch.EstimatedPrice
	}
	if patch.IsActive != nil {
		c.Issues[i].IsActive = *patch.IsActive
	}
	return nil
}

// DeleteIssue removes the entry unconditionally. Historical payment records
// snapshot their own pricing, so no foreign-key check is needed.
func (c *PricingConfig) DeleteIssue(id string) error {
	i := c.findIssue(id)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Issues = append(c.Issues[:i], c.Issues[i+1:]...)
	return nil
}

func (c *PricingConfig) AddEmergencyService(item EmergencyServiceItem) error {
	if item.ID == "" {
		item.ID = DeriveItemID(item.Label)
	}
	if item.ID == "" {
		return ErrInvalidConfig
	}
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if item.UrgencyLevel != UrgencyHigh && item.UrgencyLevel != UrgencyMedium {
		return ErrInvalidConfig
	}
	if c.findEmergencyService(item.ID) >= 0 {
		return ErrDuplicateID
	}
	c.EmergencyServices = append(c.EmergencyServices, item)
	return nil
}

func (c *PricingConfig) UpdateEmergencyService(id string, patch EmergencyServicePatch) error {
	i := c.findEmergencyService(id)
	if i < 0 {
		return ErrItemNotFound
	}
	if patch.Price != nil && *patch.Price < 0 {
		return ErrInvalidPrice
	}
	if patch.UrgencyLevel != nil && *patch.UrgencyLevel != UrgencyHigh && *patch.UrgencyLevel != UrgencyMedium {
		return ErrInvalidConfig
	}
	if patch.Label != nil {
		c.EmergencyServices[i].Label = *patch.Label
	}
	if patch.Price != nil {
		c.EmergencyServices[i].Price = *patch.Price
	}
	if patch.Description != nil {
		c.EmergencyServices[i].Description = *patch.Description
	}
	if patch.EstimatedTime != nil {
		c.EmergencyServices[i].EstimatedTime = *patch.EstimatedTime
	}
	if patch.UrgencyLevel != nil {
		c.EmergencyServices[i].UrgencyLevel = *patch.UrgencyLevel
	}
	if patch.IsActive != nil {
		c.EmergencyServices[i].IsActive = *patch.IsActive
	}
	return nil
}

func (c *PricingConfig) DeleteEmergencyService(id string) error {
	i := c.findEmergencyService(id)
	if i < 0 {
		return ErrItemNotFound
	}
	c.EmergencyServices = append(c.EmergencyServices[:i], c.EmergencyServices[i+1:]...)
	return nil
}
