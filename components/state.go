package components

import (
	"github.com/automoto/ronin/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimerMS  float64
}

var State = donburi.NewComponentType[StateData]()

// Enter switches state and restarts the state timer.
func (s *StateData) Enter(id config.StateID) {
	if s.CurrentState == id {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = id
	s.StateTimerMS = 0
}
