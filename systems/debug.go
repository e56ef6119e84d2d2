package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines bodies, hurtbox bands and any live attack hitbox.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	camX, camY := cameraOffset(e)

	drawEntry := func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		obj := components.Object.Get(entry).Object

		vector.StrokeRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H), 1, cfg.Green, false)

		// Band boundaries
		bandH := float32(obj.H / 3)
		for i := 1; i < 3; i++ {
			y := float32(obj.Y-camY) + bandH*float32(i)
			vector.StrokeLine(screen,
				float32(obj.X-camX), y,
				float32(obj.X-camX+obj.W), y, 1, cfg.Green, false)
		}

		if f.Attack != nil && f.Attack.Phase() == components.PhaseActive {
			hx, hy, hw, hh := AttackHitbox(obj, f.Facing, f.Attack)
			vector.StrokeRect(screen,
				float32(hx-camX), float32(hy-camY),
				float32(hw), float32(hh), 1, cfg.Red, false)
		}
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawEntry(playerEntry)
	}
	tags.Enemy.Each(e.World, drawEntry)

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		vector.StrokeRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H), 1, cfg.Red, false)
	})
}
