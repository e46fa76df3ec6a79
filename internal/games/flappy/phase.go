package flappy

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for the first flap
	PhaseActive                  // Full simulation runs
	PhaseTerminated              // Frozen until a flap restarts
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
