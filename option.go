package healthstate

// Option augments how New constructs a Health value.
type Option func(*Health)

// WithCurrent starts the value at an explicit current health instead of the
// maximum. The value is clamped into [0, max]; starting at 0 spawns the
// entity dead.
func WithCurrent(current float64) Option {
	return func(h *Health) {
		h.current = current
	}
}

// WithModifier starts the value with the given modifier already applied.
func WithModifier(m Modifier) Option {
	return func(h *Health) {
		h.modifier = m
	}
}
