package domain

// Phase represents the lifecycle state of a timer.
type Phase string

const (
	PhaseIdle      Phase = "idle"      // Created or reset, full duration remaining
	PhaseRunning   Phase = "running"   // Ticking
	PhasePaused    Phase = "paused"    // Stopped with part of the duration elapsed
	PhaseCompleted Phase = "completed" // Reached zero; left only via reset
)

// Display returns a human-readable representation of the phase.
func (p Phase) Display() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseCompleted:
		return "Completed"
	default:
		return string(p)
	}
}
