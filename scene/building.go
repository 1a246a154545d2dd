package scene

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// Building is a box-shaped scene object that can be registered as an
// obstacle.
type Building struct {
	Name string
	box  gamemath.Box
}

func NewBuilding(name string, box gamemath.Box) *Building {
	return &Building{Name: name, box: box}
}

// Bounds returns the current world-space box.
func (b *Building) Bounds() gamemath.Box {
	return b.box
}

// Move shifts the building. Controllers keep the box they captured until
// the building is refreshed.
func (b *Building) Move(offset mgl64.Vec3) {
	b.box = b.box.Translate(offset)
}

// BuildingsFromLayout creates one building per layout volume.
func BuildingsFromLayout(layout *leveldata.Layout) []*Building {
	buildings := make([]*Building, 0, len(layout.Buildings))
	for _, v := range layout.Buildings {
		buildings = append(buildings, NewBuilding(v.Name, v.Box))
	}
	return buildings
}
