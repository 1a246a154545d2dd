package components

import "github.com/yohamta/donburi"

// StateID is the locomotion state that drives clip selection.
type StateID int

const (
	StateIdle StateID = iota
	StateWalking
	StateAirborne
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

type StateData struct {
	CurrentState  StateID
	PreviousState StateID
	StateTimer    int // frames spent in CurrentState
}

// Transition moves to next, resetting the timer when the state changes.
func (s *StateData) Transition(next StateID) {
	if next == s.CurrentState {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
