// Package leveldata parses TMX scene layouts into world-space volumes.
// It has no dependencies on donburi or resolv; pure data only.
package leveldata

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Object group names read from a layout.
const (
	GroupBuildings = "buildings"
	GroupTerrain   = "terrain"
	GroupSpawn     = "spawn"
)

// Layout holds everything a scene needs from a TMX file. One tile maps to
// one world unit and the map is centred on the origin.
type Layout struct {
	Name      string
	Bounds    gamemath.Bounds
	Buildings []Volume
	Plateaus  []Volume
	Spawn     mgl64.Vec3
}

// Volume is a named box extruded from a TMX rectangle.
type Volume struct {
	Name string
	Box  gamemath.Box
}
