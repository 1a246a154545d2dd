package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Bounded is anything that can report a world-space bounding box.
type Bounded interface {
	Bounds() gamemath.Box
}

// ObstacleData is a registered static obstacle. Box is captured when the
// obstacle is registered and only changes on an explicit refresh.
type ObstacleData struct {
	Ref Bounded
	Box gamemath.Box
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
