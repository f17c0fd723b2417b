package picker

// Mode is the picker state machine position
type Mode int

const (
	Idle Mode = iota
	Armed
)

// String returns the mode name
func (m Mode) String() string {
	if m == Armed {
		return "armed"
	}
	return "idle"
}

// State is the per-session picker state owned by one runtime
type State struct {
	Active          bool
	PreferredEditor Editor
}

// Mode returns the state machine position
func (s State) Mode() Mode {
	if s.Active {
		return Armed
	}
	return Idle
}
