package healthstate

import "github.com/hivemind-games/healthstate/codec"

// healthJSON is the wire shape used when a Health is persisted as component
// bytes.
type healthJSON struct {
	Current  float64  `json:"current"`
	Max      float64  `json:"max"`
	Modifier Modifier `json:"modifier,omitempty"`
}

// MarshalJSON encodes the value in a plain {current, max, modifier} shape so
// component stores that keep components as bytes can round-trip it.
func (h Health) MarshalJSON() ([]byte, error) {
	return codec.Encode(healthJSON{Current: h.current, Max: h.max, Modifier: h.modifier})
}

// UnmarshalJSON decodes and re-validates the value. A non-positive max fails
// with ErrInvalidMaxHealth, an out-of-range current is clamped, and an
// unknown modifier falls back to ModifierNone, so stored bytes can never
// smuggle in an invalid state.
func (h *Health) UnmarshalJSON(bz []byte) error {
	wire, err := codec.Decode[healthJSON](bz)
	if err != nil {
		return err
	}
	if err := validateMax(wire.Max); err != nil {
		return err
	}
	h.max = wire.Max
	h.current = clamp(wire.Current, wire.Max)
	h.modifier = wire.Modifier
	if h.modifier != ModifierNone && h.modifier != ModifierInvincible {
		h.modifier = ModifierNone
	}
	return nil
}
