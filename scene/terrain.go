package scene

import (
	"math"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// Plateaus is a terrain surface made of a ground plane and raised boxes.
type Plateaus struct {
	Ground float64
	Boxes  []gamemath.Box
}

func NewPlateaus(ground float64, boxes ...gamemath.Box) *Plateaus {
	return &Plateaus{Ground: ground, Boxes: boxes}
}

// PlateausFromLayout builds the terrain of a layout on a ground plane at y=0.
func PlateausFromLayout(layout *leveldata.Layout) *Plateaus {
	p := NewPlateaus(0)
	for _, v := range layout.Plateaus {
		p.Boxes = append(p.Boxes, v.Box)
	}
	return p
}

// IntersectRay returns the nearest point where the ray meets the ground or a
// plateau. Plateaus containing the ray origin are ignored.
func (p *Plateaus) IntersectRay(origin, dir mgl64.Vec3) (mgl64.Vec3, bool) {
	nearest := math.Inf(1)
	if t, ok := gamemath.RayPlaneY(origin, dir, p.Ground); ok {
		nearest = t
	}
	for _, b := range p.Boxes {
		// A ray starting inside a box would report its own origin.
		if within(b, origin) {
			continue
		}
		if t, ok := gamemath.RayBox(origin, dir, b); ok && t < nearest {
			nearest = t
		}
	}
	if math.IsInf(nearest, 1) {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(nearest)), true
}

func within(b gamemath.Box, p mgl64.Vec3) bool {
	return p.X() > b.Min.X() && p.X() < b.Max.X() &&
		p.Y() > b.Min.Y() && p.Y() < b.Max.Y() &&
		p.Z() > b.Min.Z() && p.Z() < b.Max.Z()
}

// HeightAt samples the surface straight down from above x, z.
func (p *Plateaus) HeightAt(x, z float64) float64 {
	top := p.Ground
	for _, b := range p.Boxes {
		top = math.Max(top, b.Max.Y())
	}
	if hit, ok := p.IntersectRay(mgl64.Vec3{x, top + 1, z}, mgl64.Vec3{0, -1, 0}); ok {
		return hit.Y()
	}
	return p.Ground
}
