package game

import "fmt"

// State represents the current phase of a round.
type State int

const (
	StateIdle     State = iota // Aiming; spring is mutable
	StateInFlight              // Projectile flying; spring is locked
	StateResolved              // Flight ended; waiting for the auto-reset
)

var stateNames = [...]string{
	StateIdle:     "idle",
	StateInFlight: "in_flight",
	StateResolved: "resolved",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
