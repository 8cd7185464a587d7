package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/slingshot/internal/core"
	"github.com/vovakirdan/slingshot/internal/sim"
)

// Visual characters for rendering
const (
	FloorChar     = '▀'
	GroundChar    = '░'
	SlingshotChar = 'Y'
	PostChar      = '│'
	AimChar       = '·'
	PreviewChar   = '.'
	PigChar       = '●'
	BirdChar      = '◉'
	QueuedChar    = 'o'
	BlastChar     = '*'
	FadingChar    = '+'
)

// materialGlyphs maps block materials to fill glyphs and colors.
var materialGlyphs = map[sim.Material]struct {
	Rune  rune
	Color core.Color
}{
	sim.MaterialWood:  {'▒', core.ColorBrown},
	sim.MaterialStone: {'█', core.ColorGray},
	sim.MaterialGlass: {'░', core.ColorCyan},
}

// birdColors maps bird types to screen colors.
var birdColors = map[sim.BirdType]core.Color{
	sim.BirdRed:    core.ColorBrightRed,
	sim.BirdBlue:   core.ColorBrightBlue,
	sim.BirdYellow: core.ColorBrightYellow,
	sim.BirdBlack:  core.ColorDarkGray,
	sim.BirdWhite:  core.ColorBrightWhite,
}

// viewport maps world coordinates to screen cells. Row 0 holds the HUD and
// the last row holds the key hints.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(snap *sim.Snapshot, dst *core.Screen) viewport {
	h := dst.Height() - 2
	return viewport{
		sx:  float64(dst.Width()) / snap.Width,
		sy:  float64(h) / snap.Height,
		top: 1,
		w:   dst.Width(),
		h:   h,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// inField reports whether a cell lies in the play area.
func (v viewport) inField(cx, cy int) bool {
	return cx >= 0 && cx < v.w && cy >= v.top && cy < v.top+v.h
}

func (v viewport) set(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if v.inField(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(&snap, dst)

	g.renderGround(dst, v, &snap)
	g.renderSlingshot(dst, v, &snap)
	g.renderBlocks(dst, v, &snap)
	g.renderPigs(dst, v, &snap)
	g.renderBirds(dst, v, &snap)
	g.renderEffects(dst, v, &snap)
	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, &snap)
}

func (g *Game) renderGround(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	_, fy := v.cell(0, snap.FloorY)
	for y := fy; y < v.top+v.h; y++ {
		r := GroundChar
		if y == fy {
			r = FloorChar
		}
		for x := range v.w {
			v.set(dst, x, y, r, core.ColorGreen)
		}
	}
}

func (g *Game) renderSlingshot(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	ax, ay := v.cell(snap.AnchorX, snap.AnchorY)
	_, fy := v.cell(0, snap.FloorY)
	for y := ay + 1; y < fy; y++ {
		v.set(dst, ax, y, PostChar, core.ColorBrown)
	}
	v.set(dst, ax, ay, SlingshotChar, core.ColorBrown)

	if !g.aiming() {
		return
	}

	// Trajectory preview first so the aim line draws over it.
	if steps := g.cfg.Difficulty.PreviewSteps; steps > 0 {
		vx, vy := g.aim.Velocity()
		for _, p := range PreviewPath(snap.AnchorX, snap.AnchorY, vx, vy, snap.Gravity, snap.FloorY, steps) {
			cx, cy := v.cell(p.X, p.Y)
			v.set(dst, cx, cy, PreviewChar, core.ColorGray)
		}
	}

	// Rubber band from the anchor to the drag point.
	const bandSegments = 6
	for i := 1; i <= bandSegments; i++ {
		f := float64(i) / bandSegments
		cx, cy := v.cell(snap.AnchorX+g.aim.DX*f, snap.AnchorY+g.aim.DY*f)
		v.set(dst, cx, cy, AimChar, core.ColorOrange)
	}
}

func (g *Game) renderBlocks(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	for _, b := range snap.Blocks {
		glyph, ok := materialGlyphs[b.Material]
		if !ok {
			glyph.Rune, glyph.Color = '#', core.ColorWhite
		}
		x0, y0 := v.cell(b.X, b.Y)
		x1, y1 := v.cell(b.X+b.W, b.Y+b.H)
		w := max(1, x1-x0)
		h := max(1, y1-y0)

		// Damaged blocks show a lighter glyph.
		r := glyph.Rune
		if b.Health < g.tuning.MaterialProfile(b.Material).MaxHealth/2 {
			r = '▚'
		}
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				v.set(dst, x, y, r, glyph.Color)
			}
		}
	}
}

func (g *Game) renderPigs(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	for _, p := range snap.Pigs {
		drawDisc(dst, v, p.X, p.Y, p.Radius, PigChar, core.ColorBrightGreen)
	}
}

func (g *Game) renderBirds(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	// Queued birds sit in a row behind the slingshot.
	for i, b := range snap.QueuedBirds() {
		x := snap.AnchorX - float64(i+1)*g.tuning.QueueSpacing
		cx, cy := v.cell(x, snap.FloorY-1)
		v.set(dst, cx, cy-1, QueuedChar, birdColor(b.Type))
	}

	for i, b := range snap.Birds {
		if b.Launched && !b.Active {
			continue
		}
		if !b.Launched && i != snap.ActiveIndex {
			continue
		}
		drawDisc(dst, v, b.X, b.Y, b.Radius, BirdChar, birdColor(b.Type))
	}
}

func (g *Game) renderEffects(dst *core.Screen, v viewport, snap *sim.Snapshot) {
	for _, e := range snap.Effects {
		life := e.Life()
		if life <= 0 {
			continue
		}
		r := BlastChar
		if life < 0.5 {
			r = FadingChar
		}
		radius := e.Radius * (1 - life*0.35)
		drawRing(dst, v, e.X, e.Y, radius, r, core.ColorOrange)
	}
}

// renderHUD draws level, bird, score and pig counters on row 0 and the key
// hints on the last row.
func (g *Game) renderHUD(dst *core.Screen, snap *sim.Snapshot) {
	lvl := g.Level()
	left := fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), lvl.Name)
	dst.DrawText(1, 0, left)

	bird := "-"
	if snap.HasActive {
		bird = snap.ActiveType.String()
	}
	center := fmt.Sprintf("Bird: %s  Left: %d", bird, len(snap.QueuedBirds()))
	dst.DrawTextCentered(0, center, birdColor(snap.ActiveType))

	right := fmt.Sprintf("Pigs: %d  Score: %d", len(snap.Pigs), snap.Score)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	hint := "arrows aim  space launch  e ability  r restart  n/N level  q quit"
	if g.aiming() {
		vx, vy := g.aim.Velocity()
		hint = fmt.Sprintf("angle %3.0f°  power %3.0f%%  v=(%.0f,%.0f)  |  %s",
			g.aim.Angle(), g.aim.Pull()*100, vx, vy, hint)
	}
	if len([]rune(hint)) > dst.Width() {
		hint = string([]rune(hint)[:dst.Width()])
	}
	dst.DrawTextColored(0, dst.Height()-1, hint, core.ColorGray)
}

// renderOverlay draws the result banner and the pause notice.
func (g *Game) renderOverlay(dst *core.Screen, snap *sim.Snapshot) {
	midY := dst.Height() / 2
	switch {
	case snap.Result == sim.ResultWon:
		dst.DrawTextCentered(midY-1, "Level Cleared!", core.ColorBrightYellow)
		dst.DrawTextCentered(midY, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
		dst.DrawTextCentered(midY+1, "space: next level  r: replay", core.ColorGray)
	case snap.Result == sim.ResultLost:
		dst.DrawTextCentered(midY-1, "Out of Birds", core.ColorBrightRed)
		dst.DrawTextCentered(midY, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
		dst.DrawTextCentered(midY+1, "space: retry  n: skip level", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(midY, "PAUSED", core.ColorBrightWhite)
	}
}

func birdColor(bt sim.BirdType) core.Color {
	if c, ok := birdColors[bt]; ok {
		return c
	}
	return core.ColorBrightRed
}

// drawDisc fills every cell whose center lies within radius of (x, y), and
// at least the cell containing the center.
func drawDisc(dst *core.Screen, v viewport, x, y, radius float64, r rune, c core.Color) {
	x0, y0 := v.cell(x-radius, y-radius)
	x1, y1 := v.cell(x+radius, y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) / v.sx
			wy := (float64(cy-v.top) + 0.5) / v.sy
			if core.Distance(wx, wy, x, y) <= radius {
				v.set(dst, cx, cy, r, c)
			}
		}
	}
	cx, cy := v.cell(x, y)
	v.set(dst, cx, cy, r, c)
}

// drawRing plots a circle outline.
func drawRing(dst *core.Screen, v viewport, x, y, radius float64, r rune, c core.Color) {
	const segments = 24
	for i := range segments {
		a := float64(i) * 2 * math.Pi / segments
		cx, cy := v.cell(x+math.Cos(a)*radius, y+math.Sin(a)*radius)
		v.set(dst, cx, cy, r, c)
	}
}
