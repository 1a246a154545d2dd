package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Surface answers downward ray queries for terrain height sampling.
type Surface interface {
	IntersectRay(origin, dir mgl64.Vec3) (mgl64.Vec3, bool)
}

type TerrainData struct {
	Surface Surface
}

var Terrain = donburi.NewComponentType[TerrainData]()
