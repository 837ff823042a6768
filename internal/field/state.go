package field

import "fmt"

// State is the presentation mode of a text field. The host owns it and
// flips it in response to focus, edits and validation; the field only reads it.
type State string

const (
	StateDefault  State = "default"
	StateDisabled State = "disabled"
	StateFocused  State = "focused"
	StateTyping   State = "typing"
	StateFilled   State = "filled"
	StateError    State = "error"
)

var allStates = []State{
	StateDefault,
	StateDisabled,
	StateFocused,
	StateTyping,
	StateFilled,
	StateError,
}

// States returns every field state in declaration order.
func States() []State {
	out := make([]State, len(allStates))
	copy(out, allStates)
	return out
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	for _, candidate := range allStates {
		if s == candidate {
			return true
		}
	}
	return false
}

// String returns the string representation of the state
func (s State) String() string {
	if s == "" {
		return string(StateDefault)
	}
	return string(s)
}

// ParseState converts a state name into a State.
func ParseState(name string) (State, error) {
	if name == "" {
		return StateDefault, nil
	}
	s := State(name)
	if !s.Valid() {
		return "", fmt.Errorf("unknown field state %q", name)
	}
	return s, nil
}

// UnmarshalText lets config decoders reject unknown state names.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
