package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateMovement turns the character by a fixed step toward the sign of the
// X intent, then moves it along its facing when the collision check allows.
func UpdateMovement(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	cc := s.Tuning.Character

	tags.Character.Each(w, func(e *donburi.Entry) {
		dir := components.Character.Get(e).Direction
		if !gamemath.HasIntent(dir) {
			return
		}

		transform := components.Transform.Get(e)
		transform.Yaw += gamemath.YawStep(dir, cc.RotateSpeed)
		move := gamemath.MoveVector(dir, cc.MoveSpeed, transform.Yaw)

		if checkCollisions(w, e, s, move) {
			transform.Position = transform.Position.Add(move)
			syncCollider(w, e)
		}
	})
}
