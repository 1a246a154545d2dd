package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ColliderData is the character's collision box. Local is fixed once the
// model loads; World is Local translated to the current position.
type ColliderData struct {
	Local gamemath.Box
	World gamemath.Box
}

var Collider = donburi.NewComponentType[ColliderData]()
