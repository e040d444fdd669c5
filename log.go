package healthstate

import "github.com/rs/zerolog"

// MarshalZerologObject lets hosts log a health snapshot as a structured
// object:
//
//	logger.Info().Object("health", h).Msg("took a hit")
func (h Health) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("current", h.current)
	e.Float64("max", h.max)
	e.Str("state", h.State().String())
	if h.modifier != ModifierNone {
		e.Str("modifier", h.modifier.String())
	}
}
