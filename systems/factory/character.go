package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns the grounded character at position. It has no model
// yet; movement intent and jumps are accepted right away.
func CreateCharacter(w donburi.World, position mgl64.Vec3, t config.Tuning) *donburi.Entry {
	character := archetypes.Character.Spawn(w)

	position[1] = t.Physics.GroundHeight
	components.Transform.SetValue(character, components.TransformData{Position: position})
	components.Physics.SetValue(character, components.PhysicsData{
		Grounded:  true,
		MinHeight: t.Physics.GroundHeight,
	})
	components.State.SetValue(character, components.StateData{
		CurrentState:  components.StateIdle,
		PreviousState: components.StateIdle,
	})

	return character
}

// AttachModel finishes a successful load: shadows, clips, and the collision
// box, which is fixed from here on.
func AttachModel(w donburi.World, character *donburi.Entry, model *assets.Model, t config.Tuning) {
	if s := t.Character.ModelScale; s != 1 {
		model.Traverse(func(m *assets.Mesh) {
			m.Bounds = m.Bounds.Scale(s)
		})
	}
	model.EnableShadows()

	character.AddComponent(components.Model)
	components.Model.SetValue(character, components.ModelData{Model: model})

	if len(model.Clips) > 0 {
		character.AddComponent(components.Animation)
		components.Animation.Set(character, GenerateAnimations(model.Clips, t.Animation.StartClips))
	}

	local := gamemath.Footprint(model.Bounds())
	position := components.Transform.Get(character).Position
	collider := components.ColliderData{Local: local, World: local.Translate(position)}
	character.AddComponent(components.Collider)
	components.Collider.SetValue(character, collider)

	if spaceEntry, ok := components.Space.First(w); ok {
		obj := components.Space.Get(spaceEntry).NewObject(collider.World, tags.ResolvCharacter)
		obj.Data = character
		character.AddComponent(components.Object)
		components.Object.SetValue(character, components.ObjectData{Object: obj})
	}
}

// AttachPlaceholder is the failed-load path: a capsule with no clips and no
// collision box.
func AttachPlaceholder(character *donburi.Entry, t config.Tuning) *assets.Model {
	model := assets.NewPlaceholder(t.Character.PlaceholderRadius, t.Character.PlaceholderLength)
	character.AddComponent(components.Model)
	components.Model.SetValue(character, components.ModelData{Model: model})
	return model
}
