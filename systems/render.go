package systems

import (
	"image/color"
	"math"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the backdrop and every body. All art is vector-drawn;
// fighters are posed stick figures driven entirely by simulation state, so
// what the player sees is exactly what adjudication uses.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)

	drawBackdrop(e, screen, camX)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		drawFighter(screen, entry, camX, camY, cfg.Red)
	})
	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawFighter(screen, playerEntry, camX, camY, cfg.White)
	}

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		drawHazard(screen, entry, camX, camY)
	})
}

// cameraOffset is the world-to-screen translation including shake.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.X - camera.OffsetX, -camera.OffsetY
}

func drawBackdrop(e *ecs.ECS, screen *ebiten.Image, camX float64) {
	screen.Fill(cfg.SkyBlue)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil {
		return
	}

	gy := float32(lvl.GroundY)
	sw := float32(cfg.C.Width)
	sh := float32(cfg.C.Height)

	// Ground strip from the cliff edge rightward.
	cliffX := float32(lvl.FallBoundaryX - camX)
	if cliffX < 0 {
		cliffX = 0
	}
	vector.DrawFilledRect(screen, cliffX, gy, sw-cliffX, sh-gy, cfg.GroundBrown, false)

	// The sea below the cliff on the left.
	if cliffX > 0 {
		seaY := gy + 40
		vector.DrawFilledRect(screen, 0, seaY, cliffX, sh-seaY, cfg.SeaBlue, false)
	}

	// Ground line.
	vector.StrokeLine(screen, cliffX, gy, sw, gy, 2, cfg.Black, false)
}

// drawFighter renders one posed stick figure.
func drawFighter(screen *ebiten.Image, entry *donburi.Entry, camX, camY float64, tint color.RGBA) {
	f := components.Fighter.Get(entry)
	st := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	c := fadeColor(tint, f.Opacity)
	x := float32(obj.X - camX)
	y := float32(obj.Y - camY)
	w := float32(obj.W)
	h := float32(obj.H)

	if st.CurrentState == cfg.Dead {
		// Lying along the ground.
		baseY := y + h - 4
		vector.StrokeLine(screen, x-w, baseY, x+w*2, baseY, 3, c, false)
		return
	}

	// The bow folds the torso forward; a landed hit leans it back.
	lean := float32(0)
	if f.BowBlend > 0 {
		lean = float32(f.BowBlend) * w * 1.2
	} else if st.CurrentState == cfg.Hit {
		lean = -w * 0.5
	}

	headR := w * 0.35
	hipY := y + h*0.55
	cx := x + w/2
	headX := cx + lean*float32(f.Facing)
	headY := y + headR + float32(f.BowBlend)*h*0.18

	// Torso and head
	vector.StrokeLine(screen, cx, hipY, headX, headY+headR, 3, c, false)
	vector.StrokeCircle(screen, headX, headY, headR, 3, c, false)

	// Legs
	footY := y + h
	legSpread := w * 0.6
	if f.Stance == cfg.StanceLow {
		legSpread = w * 0.95
	}
	vector.StrokeLine(screen, cx, hipY, cx-legSpread, footY, 3, c, false)
	vector.StrokeLine(screen, cx, hipY, cx+legSpread, footY, 3, c, false)

	drawArms(screen, f, st, cx, y, h, w, c)
}

// drawArms poses the guard by stance height; a strike extends the attacking
// limb toward the opponent by the current extension blend.
func drawArms(screen *ebiten.Image, f *components.FighterData, st *components.StateData, cx, y, h, w float32, c color.RGBA) {
	shoulderY := y + h*0.3
	dir := float32(f.Facing)

	guardY := shoulderY
	switch f.Stance {
	case cfg.StanceHigh:
		guardY = y + h*0.12
	case cfg.StanceLow:
		guardY = y + h*0.52
	}

	if atk := f.Attack; atk != nil {
		ext := float32(atk.Extension()) * float32(atk.Reach)
		limbY := y + h*bandCenterFrac(atk.Height)
		if atk.Kind == cfg.Kick {
			hipY := y + h*0.55
			vector.StrokeLine(screen, cx, hipY, cx+dir*ext, limbY, 3, c, false)
		} else {
			vector.StrokeLine(screen, cx, shoulderY, cx+dir*ext, limbY, 3, c, false)
		}
		// Off arm stays in guard.
		vector.StrokeLine(screen, cx, shoulderY, cx-dir*w*0.4, guardY, 3, c, false)
		return
	}

	// Both arms forward in guard at stance height.
	vector.StrokeLine(screen, cx, shoulderY, cx+dir*w*0.7, guardY, 3, c, false)
	vector.StrokeLine(screen, cx, shoulderY, cx+dir*w*0.45, guardY+4, 3, c, false)
}

// bandCenterFrac is the vertical center of a height band as a body fraction.
func bandCenterFrac(s cfg.Stance) float32 {
	switch s {
	case cfg.StanceHigh:
		return 1.0 / 6.0
	case cfg.StanceMid:
		return 0.5
	default:
		return 5.0 / 6.0
	}
}

// drawHazard renders the ambush as a winged diamond.
func drawHazard(screen *ebiten.Image, entry *donburi.Entry, camX, camY float64) {
	hz := components.Hazard.Get(entry)
	obj := components.Object.Get(entry).Object

	c := fadeColor(cfg.Black, hz.Opacity)
	x := float32(obj.X - camX)
	y := float32(obj.Y - camY)
	w := float32(obj.W)
	h := float32(obj.H)
	cx := x + w/2
	cy := y + h/2

	flap := float32(math.Sin(hz.PhaseTimerMS*0.02)) * h * 0.4
	vector.StrokeLine(screen, cx, cy, x, y-flap, 2, c, false)
	vector.StrokeLine(screen, cx, cy, x+w, y-flap, 2, c, false)
	vector.StrokeLine(screen, cx, y+h, cx-3, cy, 2, c, false)
	vector.StrokeLine(screen, cx, y+h, cx+3, cy, 2, c, false)
}

func fadeColor(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
