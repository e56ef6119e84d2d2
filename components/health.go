package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Fraction returns current health in [0,1] for the presentation layer.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
