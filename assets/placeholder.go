package assets

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// NewPlaceholder builds the capsule stand-in shown when the character model
// cannot be loaded. It casts shadows but has no clips.
func NewPlaceholder(radius, length float64) *Model {
	half := length/2 + radius
	return &Model{
		Name: "placeholder",
		Meshes: []*Mesh{{
			Name: "capsule",
			Bounds: gamemath.Box{
				Min: mgl64.Vec3{-radius, -half, -radius},
				Max: mgl64.Vec3{radius, half, radius},
			},
			CastShadow: true,
		}},
		Placeholder: true,
	}
}
