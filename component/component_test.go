package component_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/hivemind-games/healthstate"
	"github.com/hivemind-games/healthstate/component"
)

func TestHealthComponentName(t *testing.T) {
	assert.Equal(t, "health", component.Health{}.Name())
}

func TestNewMetadata(t *testing.T) {
	md, err := component.NewMetadata[component.Health]()
	assert.NilError(t, err)
	assert.Equal(t, "health", md.Name())
	assert.Check(t, len(md.GetSchema()) > 0)
}

func TestMetadataIDIsSetOnce(t *testing.T) {
	md, err := component.NewMetadata[component.Health]()
	assert.NilError(t, err)

	assert.NilError(t, md.SetID(7))
	assert.Equal(t, component.TypeID(7), md.ID())

	// Re-registering with the same ID is allowed, changing it is not.
	assert.NilError(t, md.SetID(7))
	err = md.SetID(8)
	assert.Check(t, err != nil)
	assert.Equal(t, component.TypeID(7), md.ID())
}

func TestMetadataDefaultValue(t *testing.T) {
	def, err := component.NewHealth(100)
	assert.NilError(t, err)

	md, err := component.NewMetadata[component.Health](component.WithDefault(def))
	assert.NilError(t, err)

	bz, err := md.New()
	assert.NilError(t, err)

	decoded, err := md.Decode(bz)
	assert.NilError(t, err)
	got, ok := decoded.(component.Health)
	assert.Check(t, ok)
	assert.Equal(t, 100.0, got.Current())
	assert.Equal(t, 100.0, got.Max())
	assert.Check(t, got.IsAlive())
}

func TestMetadataEncodeDecode(t *testing.T) {
	md, err := component.NewMetadata[component.Health]()
	assert.NilError(t, err)

	h, err := component.NewHealth(100, healthstate.WithCurrent(35))
	assert.NilError(t, err)

	bz, err := md.Encode(h)
	assert.NilError(t, err)

	decoded, err := md.Decode(bz)
	assert.NilError(t, err)
	got, ok := decoded.(component.Health)
	assert.Check(t, ok)
	assert.Equal(t, 35.0, got.Current())
}

func TestSchemaIsStable(t *testing.T) {
	first, err := component.SerializeSchema(component.Health{})
	assert.NilError(t, err)
	second, err := component.SerializeSchema(component.Health{})
	assert.NilError(t, err)

	same, err := component.IsSchemaValid(first, second)
	assert.NilError(t, err)
	assert.Check(t, same)
}

// entityStore is the smallest possible stand-in for a host's component
// registry: bytes filed by entity ID. It exists only to show that a Health
// survives a store round trip; real storage lives in the host application.
type entityStore struct {
	md    component.Metadata
	comps map[uint64][]byte
}

func (s *entityStore) set(id uint64, h component.Health) error {
	bz, err := s.md.Encode(h)
	if err != nil {
		return err
	}
	s.comps[id] = bz
	return nil
}

func (s *entityStore) get(id uint64) (component.Health, error) {
	decoded, err := s.md.Decode(s.comps[id])
	if err != nil {
		return component.Health{}, err
	}
	return decoded.(component.Health), nil
}

func TestHealthSurvivesAStoreRoundTrip(t *testing.T) {
	md, err := component.NewMetadata[component.Health]()
	assert.NilError(t, err)
	store := &entityStore{md: md, comps: map[uint64][]byte{}}

	h, err := component.NewHealth(100)
	assert.NilError(t, err)
	assert.NilError(t, h.Damage(30))

	const entityID = 42
	assert.NilError(t, store.set(entityID, h))

	got, err := store.get(entityID)
	assert.NilError(t, err)
	assert.Equal(t, 70.0, got.Current())
	assert.Check(t, got.IsAlive())

	assert.NilError(t, got.Damage(100))
	assert.NilError(t, store.set(entityID, got))

	got, err = store.get(entityID)
	assert.NilError(t, err)
	assert.Check(t, got.IsDead())
}
