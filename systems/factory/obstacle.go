package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// CreateObstacle registers ref as a static obstacle. Its box is captured now
// and does not follow the object afterwards.
func CreateObstacle(w donburi.World, ref components.Bounded) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)
	box := ref.Bounds()
	components.Obstacle.SetValue(obstacle, components.ObstacleData{Ref: ref, Box: box})

	if spaceEntry, ok := components.Space.First(w); ok {
		obj := components.Space.Get(spaceEntry).NewObject(box, tags.ResolvObstacle)
		obj.Data = obstacle // Link for O(1) lookup
		components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	}

	return obstacle
}

// RefreshObstacle recaptures the box of the obstacle registered for ref. It
// reports false when ref was never registered.
func RefreshObstacle(w donburi.World, ref components.Bounded) bool {
	var found *donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Obstacle.Get(e).Ref == ref {
			found = e
		}
	})
	if found == nil {
		return false
	}

	ob := components.Obstacle.Get(found)
	ob.Box = ob.Ref.Bounds()

	obj := components.Object.Get(found).Object
	if spaceEntry, ok := components.Space.First(w); ok && obj != nil {
		components.Space.Get(spaceEntry).Place(obj, ob.Box)
	}
	return true
}
