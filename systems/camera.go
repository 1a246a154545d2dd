package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateCamera snaps the camera to the character every frame. There is no
// smoothing.
func UpdateCamera(w donburi.World) {
	s := settings(w)
	if s == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	characterEntry, ok := tags.Character.First(w)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	position := components.Transform.Get(characterEntry).Position

	camera.Position = position.Add(s.Tuning.Camera.Offset)
	camera.Target = position.Add(mgl64.Vec3{0, s.Tuning.Camera.LookHeight, 0})

	if camera.Rig != nil {
		camera.Rig.SetPosition(camera.Position)
		camera.Rig.LookAt(camera.Target)
	}
}
