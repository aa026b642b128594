package request

// Pricing admin payloads. Pointer fields mean "leave untouched"; the
// usecase re-validates the merged config before anything is saved.

type UpdateVehiclePricingRequest struct {
	BaseFare              *int64   `json:"base_fare"`
	PricePerKm            *int64   `json:"price_per_km"`
	MinimumFare           *int64   `json:"minimum_fare"`
	EmergencySurcharge    *int64   `json:"emergency_surcharge"`
	SurgeMultiplier       *float64 `json:"surge_multiplier"`
	PlatformCommissionPct *float64 `json:"platform_commission_pct"`
	MechanicCommissionPct *float64 `json:"mechanic_commission_pct"`
	OtherIssueBasePrice   *int64   `json:"other_issue_base_price"`
}

// AddIssueRequest adds a catalogue issue. An empty id is derived from the
// label server-side.

type AddIssueRequest struct {
	ID             string `json:"id"`
	Label          string `json:"label" binding:"required"`
	EstimatedPrice int64  `json:"estimated_price"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateIssueRequest struct {
	Label          *string `json:"label"`
	EstimatedPrice *int64  `json:"estimated_price"`
	IsActive       *bool   `json:"is_active"`
}

type AddEmergencyServiceRequest struct {
	ID            string `json:"id"`
	Label         string `json:"label" binding:"required"`
	Price         int64  `json:"price"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	UrgencyLevel  string `json:"urgency_level" binding:"required"`
	IsActive      *bool  `json:"is_active"`
}

type UpdateEmergencyServiceRequest struct {
	Label         *string `json:"label"`
	Price         *int64  `json:"price"`
	Description   *string `json:"description"`
	EstimatedTime *string `json:"estimated_time"`
	UrgencyLevel  *string `json:"urgency_level"`
	IsActive      *bool   `json:"is_active"`
}

type UpdateGlobalPricingRequest struct {
	BaseFare              int64   `json:"base_fare"`
	PricePerKm            int64   `json:"price_per_km"`
	MinimumFare           int64   `json:"minimum_fare"`
	EmergencySurcharge    int64   `json:"emergency_surcharge"`
	SurgeMultiplier       float64 `json:"surge_multiplier"`
	PlatformCommissionPct float64 `json:"platform_commission_pct"`
	MechanicCommissionPct float64 `json:"mechanic_commission_pct"`
}
