package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi"
)

// SetTerrain replaces the single terrain surface. A nil surface disables
// height sampling.
func SetTerrain(w donburi.World, surface components.Surface) *donburi.Entry {
	terrain, ok := components.Terrain.First(w)
	if !ok {
		terrain = archetypes.Terrain.Spawn(w)
	}
	components.Terrain.SetValue(terrain, components.TerrainData{Surface: surface})
	return terrain
}
