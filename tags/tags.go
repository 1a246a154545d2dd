package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Obstacle  = donburi.NewTag().SetName("Obstacle")
	Camera    = donburi.NewTag().SetName("Camera")
	Terrain   = donburi.NewTag().SetName("Terrain")
)

// Resolv tags for the broad phase
const (
	ResolvCharacter = "character"
	ResolvObstacle  = "obstacle"
)
