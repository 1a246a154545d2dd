package components

import (
	"github.com/automoto/thirdperson/assets"
	"github.com/yohamta/donburi"
)

type ModelData struct {
	*assets.Model
}

var Model = donburi.NewComponentType[ModelData]()
