// Package component is the integration layer between plain health values and
// an entity store. The core healthstate types carry no storage marker; this
// package supplies the naming, identity, codec, and schema capabilities a
// component registry expects from an attachable value.
package component

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"github.com/hivemind-games/healthstate/codec"
)

// TypeID identifies a registered component type within a store.
type TypeID int

// Component is the only requirement placed on an attachable value: a stable
// name for the store to file it under.
type Component interface {
	// Name returns the name of the component.
	Name() string
}

// Metadata wraps a user-defined Component and provides the capabilities an
// entity store needs to hold it.
type Metadata interface {
	// SetID assigns the store-wide ID of this component type. It must only
	// be set once.
	SetID(TypeID) error
	// ID returns the assigned ID.
	ID() TypeID
	// New returns the encoded bytes of the component's default value.
	New() ([]byte, error)
	Encode(any) ([]byte, error)
	Decode([]byte) (any, error)
	GetSchema() []byte

	Component
}

// Option augments the metadata built for component type T.
type Option[T Component] func(*metadata[T])

// WithDefault sets the value encoded by Metadata.New for entities created
// without explicit component data.
func WithDefault[T Component](defaultVal T) Option[T] {
	return func(m *metadata[T]) {
		m.defaultVal = &defaultVal
	}
}

// NewMetadata builds the Metadata for component type T.
func NewMetadata[T Component](opts ...Option[T]) (Metadata, error) {
	var t T
	schema, err := SerializeSchema(t)
	if err != nil {
		return nil, err
	}
	m := &metadata[T]{name: t.Name(), schema: schema}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type metadata[T Component] struct {
	id         TypeID
	isIDSet    bool
	name       string
	schema     []byte
	defaultVal *T
}

func (m *metadata[T]) SetID(id TypeID) error {
	if m.isIDSet {
		// Components are registered once on startup, but tests reuse the
		// same component type across stores. Re-registering is fine as long
		// as the ID does not change.
		if id == m.id {
			return nil
		}
		return eris.Errorf("id for component %q is already set to %v, cannot change to %v", m.name, m.id, id)
	}
	m.id = id
	m.isIDSet = true
	return nil
}

func (m *metadata[T]) ID() TypeID { return m.id }

func (m *metadata[T]) Name() string { return m.name }

func (m *metadata[T]) String() string { return m.name }

func (m *metadata[T]) New() ([]byte, error) {
	if m.defaultVal != nil {
		return codec.Encode(*m.defaultVal)
	}
	var t T
	return codec.Encode(t)
}

func (m *metadata[T]) Encode(v any) ([]byte, error) {
	return codec.Encode(v)
}

func (m *metadata[T]) Decode(bz []byte) (any, error) {
	return codec.Decode[T](bz)
}

func (m *metadata[T]) GetSchema() []byte { return m.schema }

// SerializeSchema reflects the JSON schema of a component value.
func SerializeSchema(c Component) ([]byte, error) {
	schema, err := jsonschema.Reflect(c).MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

// IsSchemaValid reports whether two serialized schemas describe the same
// component shape.
func IsSchemaValid(a, b []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(a, b)
	if err != nil {
		return false, eris.Wrap(err, "failed to compare component schemas")
	}
	return patch.String() == "", nil
}
