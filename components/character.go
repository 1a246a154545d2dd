package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Direction mgl64.Vec3 // movement intent, Y is always zero
}

var Character = donburi.NewComponentType[CharacterData]()
