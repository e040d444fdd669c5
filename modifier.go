package healthstate

// Modifier alters how mutating operations apply to a Health value.
type Modifier int

const (
	// ModifierNone leaves all operations unmodified.
	ModifierNone Modifier = iota
	// ModifierInvincible makes Damage and Kill no-ops. The Force variants
	// still apply.
	ModifierInvincible
)

func (m Modifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierInvincible:
		return "invincible"
	}
	return "unknown"
}
