package component

import "github.com/hivemind-games/healthstate"

// Health is the canonical attachable form of a health value. The core type
// stays framework-agnostic; this wrapper adds the name a store files it
// under. All healthstate operations are promoted, so a stored Health is used
// exactly like a plain one.
type Health struct {
	healthstate.Health
}

// Name returns the component name.
func (Health) Name() string { return "health" }

// NewHealth builds an attachable health component. Prefer registering it with
// WithDefault so entities created without explicit data start with a valid
// maximum instead of the unusable zero value.
func NewHealth(maxHealth float64, opts ...healthstate.Option) (Health, error) {
	h, err := healthstate.New(maxHealth, opts...)
	if err != nil {
		return Health{}, err
	}
	return Health{Health: h}, nil
}
