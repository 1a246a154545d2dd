package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayBox returns the distance along dir at which the ray first enters box,
// using the slab method. A ray starting inside the box reports distance 0.
func RayBox(origin, dir mgl64.Vec3, box Box) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := box.Min[axis], box.Max[axis]
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// RayPlaneY intersects a ray with the horizontal plane y = height.
func RayPlaneY(origin, dir mgl64.Vec3, height float64) (float64, bool) {
	if dir.Y() == 0 {
		return 0, false
	}
	t := (height - origin.Y()) / dir.Y()
	if t < 0 {
		return 0, false
	}
	return t, true
}
