package factory

import (
	"math"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func newSpaceData(bounds gamemath.Bounds, sc config.SpaceConfig) components.SpaceData {
	res := float64(sc.Resolution)
	pad := float64(sc.Padding)
	width := int(math.Ceil((bounds.Width() + 2*pad) * res))
	depth := int(math.Ceil((bounds.Depth() + 2*pad) * res))
	cell := sc.CellSize * sc.Resolution

	return components.SpaceData{
		Space:      resolv.NewSpace(width, depth, cell, cell),
		OriginX:    bounds.MinX - pad,
		OriginZ:    bounds.MinZ - pad,
		Resolution: res,
	}
}

func CreateSpace(w donburi.World, bounds gamemath.Bounds, sc config.SpaceConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, newSpaceData(bounds, sc))
	return space
}

// RebuildSpace replaces the grid after the world bounds or grid settings
// change and re-registers every object from its stored box.
func RebuildSpace(w donburi.World, bounds gamemath.Bounds, sc config.SpaceConfig) {
	entry, ok := components.Space.First(w)
	if !ok {
		CreateSpace(w, bounds, sc)
		return
	}
	sd := components.Space.Get(entry)
	*sd = newSpaceData(bounds, sc)

	components.Object.Each(w, func(e *donburi.Entry) {
		od := components.Object.Get(e)
		var box gamemath.Box
		var tag string
		switch {
		case e.HasComponent(components.Obstacle):
			box, tag = components.Obstacle.Get(e).Box, tags.ResolvObstacle
		case e.HasComponent(components.Collider):
			box, tag = components.Collider.Get(e).World, tags.ResolvCharacter
		default:
			return
		}
		if od.Object == nil {
			od.Object = sd.NewObject(box, tag)
			od.Data = e
			return
		}
		if od.Space != nil {
			od.Space.Remove(od.Object)
		}
		sd.Add(od.Object)
		sd.Place(od.Object, box)
	})
}
