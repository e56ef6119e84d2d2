package systems

import (
	"time"

	"github.com/automoto/ronin/components"
	"github.com/automoto/ronin/config"
	"github.com/yohamta/donburi/ecs"
)

var lastFrame time.Time

// UpdateTime computes the tick's delta time from the wall clock, clamped to
// the configured maximum so a stalled frame can never produce a large skip.
// Must run before every other system.
func UpdateTime(e *ecs.ECS) {
	now := time.Now()
	var dt float64
	if !lastFrame.IsZero() {
		dt = float64(now.Sub(lastFrame).Microseconds()) / 1000
	}
	lastFrame = now

	if dt > config.Sim.MaxDeltaMS {
		dt = config.Sim.MaxDeltaMS
	}

	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	components.Time.Get(entry).DeltaMS = dt
}

// Delta returns the clamped delta time for the current tick in milliseconds.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return 0
	}
	return components.Time.Get(entry).DeltaMS
}
