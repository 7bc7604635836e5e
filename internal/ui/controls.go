//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	barPadding   = 8
	buttonWidth  = 72
	buttonHeight = 28
	buttonGap    = 8
)

// BarHeight is the screen height reserved for the control bar.
const BarHeight = buttonHeight + 2*barPadding

type buttonKind int

const (
	buttonRun buttonKind = iota
	buttonStep
	buttonClear
)

type buttonState struct {
	kind buttonKind
	rect image.Rectangle
}

// ControlBar renders the Start/Pause, Step and Clear buttons along the
// bottom edge of the screen and dispatches clicks to the session.
type ControlBar struct {
	session Session
	buttons [3]buttonState

	bar   *ebiten.Image
	pixel *ebiten.Image
}

// NewControlBar constructs a control bar driving the provided session.
func NewControlBar(session Session) *ControlBar {
	c := &ControlBar{session: session}
	c.pixel = ebiten.NewImage(1, 1)
	c.pixel.Fill(color.White)
	for i := range c.buttons {
		x := barPadding + i*(buttonWidth+buttonGap)
		c.buttons[i] = buttonState{
			kind: buttonKind(i),
			rect: image.Rect(x, barPadding, x+buttonWidth, barPadding+buttonHeight),
		}
	}
	return c
}

// Update dispatches a just-pressed left click landing on the bar. It
// reports whether the click was consumed so the caller does not also
// treat it as painting a cell underneath.
func (c *ControlBar) Update(screenW, screenH int) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	top := screenH - BarHeight
	if my < top || mx < 0 || mx >= screenW {
		return false
	}
	my -= top
	for i := range c.buttons {
		b := &c.buttons[i]
		if !pointInRect(mx, my, b.rect) {
			continue
		}
		switch b.kind {
		case buttonRun:
			c.session.ToggleRun()
		case buttonStep:
			if !c.session.Running() {
				c.session.StepOnce()
			}
		case buttonClear:
			c.session.Clear()
		}
		break
	}
	// Clicks anywhere on the bar are swallowed, buttons or not.
	return true
}

// Draw paints the bar anchored to the bottom edge of screen.
func (c *ControlBar) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if c.bar == nil || c.bar.Bounds().Dx() != w {
		c.bar = ebiten.NewImage(w, BarHeight)
	}
	c.bar.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i := range c.buttons {
		b := &c.buttons[i]
		label, enabled := c.buttonFace(b.kind)
		c.drawButton(b.rect, label, enabled)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h-BarHeight))
	screen.DrawImage(c.bar, op)
}

func (c *ControlBar) buttonFace(kind buttonKind) (label string, enabled bool) {
	switch kind {
	case buttonRun:
		if c.session.Running() {
			return "Pause", true
		}
		return "Start", true
	case buttonStep:
		return "Step", !c.session.Running()
	default:
		return "Clear", true
	}
}

func (c *ControlBar) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	c.bar.DrawImage(c.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(c.bar, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
