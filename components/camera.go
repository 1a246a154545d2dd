package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraRig is the host camera driven by the follower.
type CameraRig interface {
	SetPosition(p mgl64.Vec3)
	LookAt(target mgl64.Vec3)
}

type CameraData struct {
	Rig      CameraRig
	Position mgl64.Vec3 // last position pushed to the rig
	Target   mgl64.Vec3 // last look-at target
}

var Camera = donburi.NewComponentType[CameraData]()
