package entities

import (
	"errors"
	"math"
)

// Money is a monetary amount in minor currency units (paise).
//
// All fare and commission arithmetic stays in integer minor units; floats
// appear only transiently inside a computation and are rounded half-up back
// to Money before leaving it. This keeps the reconciliation invariant
// platform + mechanic == total exact.

type Money int64

var (
	ErrInvalidConfig = errors.New("invalid pricing config")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidPct    = errors.New("invalid percentage")
)

// RoundHalfUp rounds to the nearest minor unit, halves away from zero toward
// the larger value (0.5 -> 1).
func RoundHalfUp(x float64) Money {
	return Money(math.Floor(x + 0.5))
}

// SplitCommission divides total between the platform and the mechanic.
//
// The platform share is rounded half-up; the mechanic share is derived by
// subtraction, never by its own rounding, so the two always sum back to
// total exactly.
func SplitCommission(total Money, platformPct float64) (platform Money, mechanic Money, err error) {
	if total < 0 {
		return 0, 0, ErrInvalidPrice
	}
	if math.IsNaN(platformPct) || platformPct < 0 || platformPct > 100 {
		return 0, 0, ErrInvalidPct
	}
	platform = RoundHalfUp(float64(total) * platformPct / 100)
	mechanic = total - platform
	return platform, mechanic, nil
}
