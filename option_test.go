package healthstate_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/hivemind-games/healthstate"
)

func TestWithCurrent(t *testing.T) {
	h, err := healthstate.New(100, healthstate.WithCurrent(30))
	assert.NilError(t, err)
	assert.Equal(t, 30.0, h.Current())
	assert.Equal(t, 100.0, h.Max())
}

func TestWithCurrentIsClamped(t *testing.T) {
	h, err := healthstate.New(100, healthstate.WithCurrent(500))
	assert.NilError(t, err)
	assert.Equal(t, 100.0, h.Current())

	// Spawning at zero health is allowed; the entity starts dead.
	h, err = healthstate.New(100, healthstate.WithCurrent(-20))
	assert.NilError(t, err)
	assert.Equal(t, 0.0, h.Current())
	assert.Check(t, h.IsDead())
}

func TestWithModifier(t *testing.T) {
	h, err := healthstate.New(100, healthstate.WithModifier(healthstate.ModifierInvincible))
	assert.NilError(t, err)
	assert.Equal(t, healthstate.ModifierInvincible, h.Modifier())
}
