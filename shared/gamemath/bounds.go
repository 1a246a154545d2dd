package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Bounds is a rectangle on the horizontal XZ plane.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contains reports whether the horizontal part of p is inside the bounds.
// Edges are inside.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX &&
		p.Z() >= b.MinZ && p.Z() <= b.MaxZ
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the Z extent.
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }
