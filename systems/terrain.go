package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var down = mgl64.Vec3{0, -1, 0}

// UpdateTerrain samples the surface under grounded characters and moves them
// onto it. The hit height also becomes the new landing height.
func UpdateTerrain(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	terrainEntry, ok := components.Terrain.First(w)
	if !ok {
		return
	}
	surface := components.Terrain.Get(terrainEntry).Surface
	if surface == nil {
		return
	}

	tags.Character.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Grounded {
			return
		}
		transform := components.Transform.Get(e)

		origin := transform.Position.Add(mgl64.Vec3{0, s.Tuning.Terrain.ProbeHeight, 0})
		hit, ok := surface.IntersectRay(origin, down)
		if !ok {
			return
		}

		body := gamemath.SnapToGround(physics.Body(transform.Position.Y()), hit.Y())
		transform.Position[1] = physics.Store(body)
		syncCollider(w, e)
	})
}
