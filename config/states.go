package config

// StateID identifies a character state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Walking
	Running
	Climbing
	Falling
	Crying

	// Interaction states are entered and left only by explicit command.
	InteractingWithExit
	InteractingWithFeedback
	InteractingWithHelp
	InteractingWithLoad
	InteractingWithOptions
)

var stateNames = map[StateID]string{
	StateNone:               "none",
	Idle:                    "idle",
	Walking:                 "walking",
	Running:                 "running",
	Climbing:                "climbing",
	Falling:                 "falling",
	Crying:                  "crying",
	InteractingWithExit:     "interacting_exit",
	InteractingWithFeedback: "interacting_feedback",
	InteractingWithHelp:     "interacting_help",
	InteractingWithLoad:     "interacting_load",
	InteractingWithOptions:  "interacting_options",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Interacting reports whether s suppresses automatic state transitions.
func (s StateID) Interacting() bool {
	return s >= InteractingWithExit && s <= InteractingWithOptions
}

// Direction is the horizontal facing of an actor.
type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns +1 for right and -1 for left.
func (d Direction) Sign() float64 {
	if d == FacingLeft {
		return -1
	}
	return 1
}

// Opposite returns the reverse facing.
func (d Direction) Opposite() Direction {
	if d == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}
