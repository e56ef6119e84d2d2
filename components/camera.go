package components

import "github.com/yohamta/donburi"

type CameraData struct {
	X float64 // world-space left edge of the view

	// Scrolled latches once the camera has moved off the world origin;
	// the scripted fall only triggers while this is false.
	Scrolled bool

	// Screen shake
	ShakeIntensity float64
	ShakeMS        float64
	ShakeElapsedMS float64
	OffsetX        float64
	OffsetY        float64
}

var Camera = donburi.NewComponentType[CameraData]()
