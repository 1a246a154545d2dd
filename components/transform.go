package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position mgl64.Vec3
	Yaw      float64 // radians about +Y
}

var Transform = donburi.NewComponentType[TransformData]()
