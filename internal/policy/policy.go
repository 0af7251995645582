// Package policy maps the collaborator's 0-5 mark to a probability and a
// warning tier.
package policy

import "dropscout/internal/model"

// Thresholds are the two configured probability cut-offs, Banner <= Overlay.
// Below Banner nothing is shown, from Banner up a banner, from Overlay up the
// blocking overlay. Both boundaries are inclusive of the higher tier.
type Thresholds struct {
	Banner  float64
	Overlay float64
}

// DefaultThresholds returns the observed default policy (50, 90).
func DefaultThresholds() Thresholds {
	return Thresholds{Banner: 50, Overlay: 90}
}

// Probability converts a 0-5 mark to a percentage in [0,100].
func Probability(mark float64) float64 {
	p := mark / 5 * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// SelectTier is a pure function of the probability and the thresholds.
func SelectTier(probability float64, t Thresholds) model.Tier {
	switch {
	case probability >= t.Overlay:
		return model.TierOverlay
	case probability >= t.Banner:
		return model.TierBanner
	default:
		return model.TierSuppressed
	}
}
