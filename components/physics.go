package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the vertical state of the character. Height lives in the
// transform; Body and Store convert to and from the pure gamemath value.
type PhysicsData struct {
	VelocityY float64
	Grounded  bool
	MinHeight float64
}

func (p *PhysicsData) Body(height float64) gamemath.Body {
	return gamemath.Body{
		Height:    height,
		VelocityY: p.VelocityY,
		Grounded:  p.Grounded,
		MinHeight: p.MinHeight,
	}
}

// Store copies b back and returns its height for the transform.
func (p *PhysicsData) Store(b gamemath.Body) float64 {
	p.VelocityY = b.VelocityY
	p.Grounded = b.Grounded
	p.MinHeight = b.MinHeight
	return b.Height
}

var Physics = donburi.NewComponentType[PhysicsData]()
