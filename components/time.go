package components

import "github.com/yohamta/donburi"

// TimeData is the singleton simulation clock. DeltaMS is the clamped step
// for the current tick; every timer and movement scales by it.
type TimeData struct {
	DeltaMS float64
}

var Time = donburi.NewComponentType[TimeData]()
