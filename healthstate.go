// Package healthstate provides a reusable health value for entities in a
// simulated world. A Health tracks current and maximum health, applies damage
// and healing with clamping, and derives an alive/dead status from the
// numbers. It carries no storage, rendering, or scheduling concerns; attach it
// to entities with whatever component store the host application uses (the
// component subpackage provides the glue).
package healthstate

import (
	"fmt"
	"math"
)

// Health tracks the current and maximum health of an entity. The zero value is
// not usable; construct one with New. Every mutation clamps current health
// into [0, max], so callers always observe a valid state.
type Health struct {
	current  float64
	max      float64
	modifier Modifier
}

// New creates a Health with the given maximum. Current health starts at the
// maximum unless overridden with WithCurrent. The maximum must be a positive,
// finite number and is fixed for the lifetime of the value.
func New(maxHealth float64, opts ...Option) (Health, error) {
	if err := validateMax(maxHealth); err != nil {
		return Health{}, err
	}
	h := Health{current: maxHealth, max: maxHealth}
	for _, opt := range opts {
		opt(&h)
	}
	h.current = clamp(h.current, h.max)
	return h, nil
}

// Current returns the entity's current health.
func (h Health) Current() float64 { return h.current }

// Max returns the health ceiling fixed at construction.
func (h Health) Max() float64 { return h.max }

// State derives the alive/dead status from current health. The status is
// never stored, so it cannot drift from the numeric value.
func (h Health) State() State {
	if h.current > 0 {
		return StateAlive
	}
	return StateDead
}

// IsAlive reports whether current health is above zero.
func (h Health) IsAlive() bool { return h.State() == StateAlive }

// IsDead reports whether current health has reached zero.
func (h Health) IsDead() bool { return h.State() == StateDead }

// Ratio returns current/max normalized into [0, 1]. The zero value reports 0.
func (h Health) Ratio() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

// Damage reduces current health by amount, clamping at 0. Excess damage is
// absorbed, not an error. Damage is a no-op while the modifier is
// ModifierInvincible; use ForceDamage to bypass that.
func (h *Health) Damage(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if h.modifier == ModifierInvincible {
		return nil
	}
	h.current = clamp(h.current-amount, h.max)
	return nil
}

// ForceDamage reduces current health regardless of any modifier.
func (h *Health) ForceDamage(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	h.current = clamp(h.current-amount, h.max)
	return nil
}

// Heal raises current health by amount, clamping at the maximum. A dead
// entity healed above zero becomes alive again. The discarded excess is
// returned so callers can redirect it (overheal shields, scoring, and so on).
func (h *Health) Heal(amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	healed := h.current + amount
	h.current = clamp(healed, h.max)
	return healed - h.current, nil
}

// HealFull restores current health to the maximum.
func (h *Health) HealFull() { h.current = h.max }

// Kill drops current health straight to 0. Kill is a no-op while the modifier
// is ModifierInvincible; use ForceKill to bypass that.
func (h *Health) Kill() {
	if h.modifier == ModifierInvincible {
		return
	}
	h.current = 0
}

// ForceKill drops current health to 0 regardless of any modifier.
func (h *Health) ForceKill() { h.current = 0 }

// SetCurrent clamps value into [0, max] and assigns it. It never fails. The
// amount discarded above the maximum is returned; NaN assigns 0.
func (h *Health) SetCurrent(value float64) float64 {
	h.current = clamp(value, h.max)
	if value > h.max {
		return value - h.max
	}
	return 0
}

// Modifier returns the modifier currently applied to the value.
func (h Health) Modifier() Modifier { return h.modifier }

// SetModifier replaces the modifier applied to the value.
func (h *Health) SetModifier(m Modifier) { h.modifier = m }

// String renders the value for debug output, e.g. "70/100 (alive)".
func (h Health) String() string {
	return fmt.Sprintf("%g/%g (%s)", h.current, h.max, h.State())
}

func clamp(v, maxHealth float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxHealth {
		return maxHealth
	}
	return v
}

func validateMax(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return ErrInvalidMaxHealth
	}
	return nil
}

func validateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidAmount
	}
	return nil
}
