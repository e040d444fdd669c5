package healthstate

// State is the alive/dead status of a Health value.
type State int

const (
	// StateAlive means current health is above zero.
	StateAlive State = iota
	// StateDead means current health has reached zero. Death is reversible;
	// Heal, Revive, and SetCurrent can all bring an entity back.
	StateDead
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	}
	return "unknown"
}
