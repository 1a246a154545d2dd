package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateObjects re-syncs every character's collision box and broad-phase
// footprint with its transform.
func UpdateObjects(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		syncCollider(w, e)
	})
}

func syncCollider(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Collider) {
		return
	}
	collider := components.Collider.Get(e)
	collider.World = collider.Local.Translate(components.Transform.Get(e).Position)

	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if spaceEntry, ok := components.Space.First(w); ok && obj != nil {
		components.Space.Get(spaceEntry).Place(obj, collider.World)
	}
}

func settings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}
