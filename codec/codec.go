// Package codec converts component values to and from the byte slices that
// entity stores keep them in.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Encode marshals a component value to bytes.
func Encode(value any) ([]byte, error) {
	bz, err := json.Marshal(value)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode component")
	}
	return bz, nil
}

// Decode unmarshals bytes back into a component value of type T.
func Decode[T any](bz []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bz, &value); err != nil {
		return value, eris.Wrap(err, "failed to decode component")
	}
	return value, nil
}
