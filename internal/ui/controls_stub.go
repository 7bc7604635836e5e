//go:build !ebiten

package ui

// BarHeight matches the GUI build so layout math stays consistent.
const BarHeight = 44

// ControlBar is a no-op placeholder for headless builds.
type ControlBar struct{}

// NewControlBar returns nil in the headless build.
func NewControlBar(Session) *ControlBar { return nil }

// Update is a no-op in the headless build.
func (c *ControlBar) Update(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (c *ControlBar) Draw(any) {}
