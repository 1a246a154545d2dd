package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

func UpdateStates(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		next := components.StateIdle
		switch {
		case !physics.Grounded:
			next = components.StateAirborne
		case gamemath.HasIntent(components.Character.Get(e).Direction):
			next = components.StateWalking
		}
		state.Transition(next)
	})
}
