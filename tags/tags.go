package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Hazard = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for collision queries
const (
	ResolvFighter = "fighter"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvHazard  = "Hazard"
)
