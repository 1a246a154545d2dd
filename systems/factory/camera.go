package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, rig components.CameraRig) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Rig: rig})
	return camera
}
