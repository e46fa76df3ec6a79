package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundStripe  = '╪'
	DirtChar      = '░'
)

// groundStripeEvery is the stripe period of the floor in cells.
const groundStripeEvery = 6

// Palette is the resolved colour of each drawn element.
type Palette struct {
	Body, Nose    core.Color
	Pipe, PipeCap core.Color
	Ground, Dirt  core.Color
	Score, Best   core.Color
}

// DefaultPalette returns the colours of the built-in theme.
func DefaultPalette() Palette {
	p, _ := PaletteFrom(config.DefaultFlappyConfig().Theme)
	return p
}

// PaletteFrom resolves a config theme.
func PaletteFrom(theme config.FlappyTheme) (Palette, error) {
	c, err := theme.Colors()
	if err != nil {
		return Palette{}, err
	}
	return Palette{
		Body:    c["body"],
		Nose:    c["nose"],
		Pipe:    c["pipe"],
		PipeCap: c["pipe_cap"],
		Ground:  c["ground"],
		Dirt:    c["dirt"],
		Score:   c["score"],
		Best:    c["best"],
	}, nil
}

// projection maps world units (y-up) onto screen cells (y-down).
type projection struct {
	sx, sy float64 // Cells per world unit
	height float64 // World height
}

func newProjection(snap Snapshot, dst *core.Screen) projection {
	return projection{
		sx:     float64(dst.Width()) / snap.Width,
		sy:     float64(dst.Height()) / snap.Height,
		height: snap.Height,
	}
}

// rect returns the cell rectangle covering box.
func (p projection) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * p.sx))
	x1 := int(math.Ceil(b.Right() * p.sx))
	y0 := int(math.Floor((p.height - b.Top()) * p.sy))
	y1 := int(math.Ceil((p.height - b.Y) * p.sy))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// row returns the screen row of world height y.
func (p projection) row(y float64) int {
	return int(math.Floor((p.height - y) * p.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.sim == nil {
		msg := "no simulation"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "CONFIG ERROR", msg, core.ColorRed)
		return
	}

	snap := g.sim.Snapshot()
	RenderSnapshot(dst, snap, g.palette)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// RenderSnapshot draws a frame: pipes, ground, body, HUD and phase overlay.
func RenderSnapshot(dst *core.Screen, snap Snapshot, pal Palette) {
	proj := newProjection(snap, dst)

	for _, pv := range snap.Pipes {
		drawPipe(dst, proj, pv, pal)
	}
	drawGround(dst, proj, snap, pal)
	drawBody(dst, proj, snap, pal)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), pal.Score)
	best := fmt.Sprintf(" Best: %d ", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, pal.Best)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "GET READY", "Press SPACE to flap", core.ColorCyan)
	case PhaseTerminated:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  SPACE to restart", snap.Score, snap.HighScore),
			core.ColorRed)
	}
}

// drawPipe renders both zones of a pair with caps facing the gap.
func drawPipe(dst *core.Screen, proj projection, pv PipeView, pal Palette) {
	upper := proj.rect(pv.Upper)
	lower := proj.rect(pv.Lower)

	dst.DrawRect(upper, PipeChar, pal.Pipe)
	dst.DrawRect(lower, PipeChar, pal.Pipe)

	if upper.H > 0 {
		dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, PipeCapTop, pal.PipeCap)
	}
	if lower.H > 0 {
		dst.DrawHLine(lower.X, lower.Y, lower.W, PipeCapBottom, pal.PipeCap)
	}
}

// drawGround fills everything below the ground line and scrolls the stripes.
func drawGround(dst *core.Screen, proj projection, snap Snapshot, pal Palette) {
	top := proj.row(snap.GroundTopY)
	shift := int(snap.GroundX * proj.sx)

	for x := 0; x < dst.Width(); x++ {
		r := GroundChar
		if (x+shift)%groundStripeEvery == 0 {
			r = GroundStripe
		}
		dst.SetColored(x, top, r, pal.Ground)
	}
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, pal.Dirt)
	}
}

// drawBody renders the body with a nose glyph that follows its rotation.
func drawBody(dst *core.Screen, proj projection, snap Snapshot, pal Palette) {
	r := proj.rect(snap.Body)
	dst.DrawRect(r, BodyChar, pal.Body)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, noseGlyph(snap.Rotation), pal.Nose)
}

// noseGlyph picks the nose character for a rotation in degrees.
func noseGlyph(rotation float64) rune {
	switch {
	case rotation > 0:
		return '▲'
	case rotation <= -45:
		return '▼'
	default:
		return '▶'
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
