package controller

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// State is a snapshot of the character for hosts and tests.
type State struct {
	Position  mgl64.Vec3
	Yaw       float64
	Direction mgl64.Vec3

	VelocityY float64
	Grounded  bool
	MinHeight float64

	Locomotion    components.StateID
	Animation     string
	Transitioning bool

	// CollisionBox is the world-space box; HasCollisionBox is false before
	// the load and in degraded mode.
	CollisionBox    gamemath.Box
	HasCollisionBox bool

	Camera       mgl64.Vec3
	CameraTarget mgl64.Vec3
}

func (c *CharacterController) State() State {
	transform := components.Transform.Get(c.character)
	physics := components.Physics.Get(c.character)

	s := State{
		Position:      transform.Position,
		Yaw:           transform.Yaw,
		Direction:     components.Character.Get(c.character).Direction,
		VelocityY:     physics.VelocityY,
		Grounded:      physics.Grounded,
		MinHeight:     physics.MinHeight,
		Locomotion:    components.State.Get(c.character).CurrentState,
		Animation:     c.CurrentAnimation(),
		Transitioning: c.Transitioning(),
	}

	if c.character.HasComponent(components.Collider) {
		s.CollisionBox = components.Collider.Get(c.character).World
		s.HasCollisionBox = true
	}
	if cameraEntry, ok := components.Camera.First(c.world); ok {
		camera := components.Camera.Get(cameraEntry)
		s.Camera = camera.Position
		s.CameraTarget = camera.Target
	}
	return s
}
