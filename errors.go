package healthstate

import "github.com/rotisserie/eris"

var (
	// ErrInvalidMaxHealth is returned by New and UnmarshalJSON when the
	// maximum health is not a positive, finite number.
	ErrInvalidMaxHealth = eris.New("max health must be positive and finite")

	// ErrInvalidAmount is returned by Damage and Heal when the amount is
	// negative or non-finite. Call the opposite operation instead of passing
	// a negative amount.
	ErrInvalidAmount = eris.New("amount must be non-negative and finite")

	// ErrInvalidRevivePercent is returned by Revive when a RevivePercent mode
	// carries a percentage outside [0, 100].
	ErrInvalidRevivePercent = eris.New("revive percentage must be within [0, 100]")
)
