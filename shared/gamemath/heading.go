package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HasIntent reports whether a horizontal direction is non-zero.
func HasIntent(dir mgl64.Vec3) bool {
	return dir.X() != 0 || dir.Z() != 0
}

// YawStep returns the yaw change for one frame of steering. The step size is
// fixed and only the sign of the X intent matters.
func YawStep(dir mgl64.Vec3, rotateSpeed float64) float64 {
	step := (math.Pi / 4) * rotateSpeed
	switch {
	case dir.X() > 0:
		return step
	case dir.X() < 0:
		return -step
	default:
		return 0
	}
}

// MoveVector scales the normalized intent to speed and rotates it about the
// vertical axis into the character's facing.
func MoveVector(dir mgl64.Vec3, speed, yaw float64) mgl64.Vec3 {
	flat := Flatten(dir)
	if !HasIntent(flat) {
		return mgl64.Vec3{}
	}
	move := flat.Normalize().Mul(speed)
	return mgl64.Rotate3DY(yaw).Mul3x1(move)
}
