package archetypes

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

var (
	// Character is spawned before the model loads. Model, Animation,
	// Collider and Object are added once it does.
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Transform,
		components.Physics,
		components.State,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Terrain,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
