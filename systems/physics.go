package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates the vertical state of airborne characters. A
// landing picks Walking or Idle with the short landing fade.
func UpdatePhysics(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	vertical := s.Tuning.Vertical()

	tags.Character.Each(w, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		physics := components.Physics.Get(e)
		if physics.Grounded {
			return
		}

		body, landed := gamemath.StepVertical(physics.Body(transform.Position.Y()), s.Delta, vertical)
		transform.Position[1] = physics.Store(body)
		syncCollider(w, e)

		if landed && e.HasComponent(components.Animation) {
			anim := s.Tuning.Animation
			name := anim.Idle
			if gamemath.HasIntent(components.Character.Get(e).Direction) {
				name = anim.Walking
			}
			components.Animation.Get(e).SetAnimation(name, anim.LandingFade)
		}
	})
}

// Jump launches the character if it is grounded. Repeated calls while
// airborne change nothing and report false.
func Jump(w donburi.World) bool {
	s := settings(w)
	e, ok := tags.Character.First(w)
	if s == nil || !ok {
		return false
	}
	transform := components.Transform.Get(e)
	physics := components.Physics.Get(e)

	body, jumped := gamemath.Jump(physics.Body(transform.Position.Y()), s.Tuning.Physics.JumpForce)
	if !jumped {
		return false
	}
	transform.Position[1] = physics.Store(body)

	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).SetAnimation(s.Tuning.Animation.Jump, s.Tuning.Animation.JumpFade)
	}
	return true
}
