package systems

import (
	"math"

	"github.com/automoto/ronin/components"
	"github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, keeping it a third of the way in from the
// left edge. The offset is clamped to the level so the view never shows past
// either end, and once the camera has moved off the origin the Scrolled latch
// stays set for the rest of the session.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := Delta(e)

	updateScreenShake(camera, dt)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	screenWidth := float64(config.C.Width)
	targetX := playerObject.X - screenWidth*config.Camera.LeftFraction

	maxX := levelData.CurrentLevel.Width - screenWidth
	targetX = math.Max(0, math.Min(maxX, targetX))

	// Exponential smoothing toward the target, framerate independent.
	blend := 1 - math.Exp(-config.Camera.SmoothingPerSecond*dt/1000)
	camera.X += (targetX - camera.X) * blend

	if camera.X > config.Camera.ScrollEpsilon {
		camera.Scrolled = true
	}
}

// updateScreenShake produces a decaying oscillating offset while a shake is
// running and clears it afterwards.
func updateScreenShake(camera *components.CameraData, dt float64) {
	if camera.ShakeMS <= 0 {
		camera.OffsetX = 0
		camera.OffsetY = 0
		return
	}

	camera.ShakeElapsedMS += dt
	progress := (camera.ShakeMS - camera.ShakeElapsedMS) / camera.ShakeMS
	if progress < 0 {
		progress = 0
	}
	intensity := camera.ShakeIntensity * progress

	camera.OffsetX = math.Sin(camera.ShakeElapsedMS*0.07) * intensity
	camera.OffsetY = math.Cos(camera.ShakeElapsedMS*0.085) * intensity

	if camera.ShakeElapsedMS >= camera.ShakeMS {
		camera.ShakeMS = 0
		camera.ShakeElapsedMS = 0
		camera.OffsetX = 0
		camera.OffsetY = 0
	}
}

// TriggerScreenShake starts a shake; a running weaker shake is replaced.
func TriggerScreenShake(e *ecs.ECS, intensity float64, durationMS float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.ShakeMS > 0 && camera.ShakeIntensity > intensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeMS = durationMS
	camera.ShakeElapsedMS = 0
}
