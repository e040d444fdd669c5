package healthstate

import "math"

type reviveKind int

const (
	reviveFull reviveKind = iota
	reviveTo
	revivePercent
)

// ReviveMode selects how much health a revive restores.
type ReviveMode struct {
	kind  reviveKind
	value float64
}

// ReviveFull restores health to the maximum.
func ReviveFull() ReviveMode { return ReviveMode{kind: reviveFull} }

// ReviveTo restores health to the given value, clamped into [0, max].
func ReviveTo(health float64) ReviveMode {
	return ReviveMode{kind: reviveTo, value: health}
}

// RevivePercent restores health to a percentage of the maximum. The
// percentage must be within [0, 100].
func RevivePercent(pct float64) ReviveMode {
	return ReviveMode{kind: revivePercent, value: pct}
}

// Revive sets current health according to mode, bringing a dead entity back
// to life when the mode restores a positive amount. Revive ignores any
// modifier. The amount discarded above the maximum, if any, is returned.
func (h *Health) Revive(mode ReviveMode) (float64, error) {
	switch mode.kind {
	case reviveTo:
		return h.SetCurrent(mode.value), nil
	case revivePercent:
		pct := mode.value
		if math.IsNaN(pct) || pct < 0 || pct > 100 {
			return 0, ErrInvalidRevivePercent
		}
		return h.SetCurrent(h.max * pct / 100), nil
	default:
		h.HealFull()
		return 0, nil
	}
}
