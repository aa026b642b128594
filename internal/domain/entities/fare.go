package entities

import "math"

// ComputeFare prices a service request from the distance formula:
//
//	raw          = baseFare + pricePerKm * distanceKm
//	floored      = max(raw, minimumFare)
//	withEmerg    = floored + emergencySurcharge (when isEmergency)
//	total        = roundHalfUp(withEmerg * surgeMultiplier)
//
// The function is pure and total on valid input: it performs no I/O and only
// fails when a config field or the distance is negative or NaN. Surge bounds
// are the config validator's job, not this function's.
func ComputeFare(cfg PricingConfig, distanceKm float64, isEmergency bool) (Money, error) {
	if cfg.BaseFare < 0 || cfg.PricePerKm < 0 || cfg.MinimumFare < 0 || cfg.EmergencySurcharge < 0 {
		return 0, ErrInvalidConfig
	}
	if math.IsNaN(cfg.SurgeMultiplier) || cfg.SurgeMultiplier < 0 {
		return 0, ErrInvalidConfig
	}
	if math.IsNaN(distanceKm) {
		return 0, ErrInvalidConfig
	}

	// Zero or negative distance charges no per-km component; the minimum
	// fare floor applies either way.
	chargeableKm := math.Max(distanceKm, 0)

	raw := float64(cfg.BaseFare) + float64(cfg.PricePerKm)*chargeableKm
	floored := math.Max(raw, float64(cfg.MinimumFare))
	if isEmergency {
		floored += float64(cfg.EmergencySurcharge)
	}
	return RoundHalfUp(floored * cfg.SurgeMultiplier), nil
}
