package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateMixer advances clip playback, fades and the transition countdown.
func UpdateMixer(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	components.Animation.Each(w, func(e *donburi.Entry) {
		if mixer := components.Animation.Get(e).Mixer; mixer != nil {
			mixer.Update(s.Delta)
		}
	})
}

// UpdateAnimation requests the clip for the current locomotion state. The
// mixer drops the request while a cross-fade is still running.
func UpdateAnimation(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	anim := s.Tuning.Animation

	tags.Character.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		state := components.State.Get(e)
		components.Animation.Get(e).SetAnimation(clipForState(state.CurrentState, anim), anim.MoveFade)
	})
}

func clipForState(state components.StateID, anim cfg.AnimationConfig) string {
	switch state {
	case components.StateAirborne:
		return anim.Jump
	case components.StateWalking:
		return anim.Walking
	default:
		return anim.Idle
	}
}
