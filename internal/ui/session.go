package ui

// Session is the slice of the simulation the control bar drives.
type Session interface {
	Running() bool
	ToggleRun()
	StepOnce()
	Clear()
}
