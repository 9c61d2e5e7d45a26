package models

// ControllerState tracks what the main controller is doing
type ControllerState int

const (
	StateIdle ControllerState = iota
	StateRunning
	// StateShuttingDown is terminal; the window is destroyed once no worker remains.
	StateShuttingDown
)

func (s ControllerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}
