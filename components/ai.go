package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// AIControllerData is the per-enemy decision state. Each controller carries
// its own seeded RNG so simulations replay deterministically under test.
type AIControllerData struct {
	Rand *rand.Rand

	// AttackTimerMS gates attack attempts; uniform 400-900ms initially,
	// 700-1400ms between attempts.
	AttackTimerMS float64

	// HazardOnDeath marks the enemy whose defeat releases the aerial ambush.
	HazardOnDeath bool
}

var AIController = donburi.NewComponentType[AIControllerData]()
