package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBox returns an inverted box that any Union will overwrite.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box has no volume on some axis.
func (b Box) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

// Size returns the extent of the box along each axis.
func (b Box) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Translate returns the box moved by offset.
func (b Box) Translate(offset mgl64.Vec3) Box {
	return Box{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Scale returns the box with both corners multiplied by s.
func (b Box) Scale(s float64) Box {
	return Box{Min: b.Min.Mul(s), Max: b.Max.Mul(s)}
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Min: mgl64.Vec3{
			math.Min(b.Min.X(), other.Min.X()),
			math.Min(b.Min.Y(), other.Min.Y()),
			math.Min(b.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(b.Max.X(), other.Max.X()),
			math.Max(b.Max.Y(), other.Max.Y()),
			math.Max(b.Max.Z(), other.Max.Z()),
		},
	}
}

// Intersects reports whether two boxes overlap. Touching faces count as an
// intersection.
func (b Box) Intersects(other Box) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// ContainsPoint reports whether p lies inside or on the box.
func (b Box) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Footprint derives a character collision box from a model's bounds: a
// quarter of the width and depth on each side of the origin and the full
// height upward from the feet.
func Footprint(bounds Box) Box {
	size := bounds.Size()
	return Box{
		Min: mgl64.Vec3{-size.X() / 4, 0, -size.Z() / 4},
		Max: mgl64.Vec3{size.X() / 4, size.Y(), size.Z() / 4},
	}
}
