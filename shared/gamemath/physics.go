package gamemath

import "math"

// Body is the vertical physics state of a character. Horizontal motion is
// driven by movement intent and never integrated here.
type Body struct {
	Height    float64
	VelocityY float64
	Grounded  bool
	MinHeight float64
}

// VerticalParams holds the constants used by StepVertical.
type VerticalParams struct {
	Gravity          float64 // negative, units/s^2
	FallMultiplier   float64 // applied while descending
	TerminalVelocity float64 // negative floor for VelocityY
}

// StepVertical advances an airborne body by dt seconds and reports whether it
// landed during this step. A grounded body is returned unchanged.
func StepVertical(b Body, dt float64, p VerticalParams) (Body, bool) {
	if b.Grounded {
		return b, false
	}

	multiplier := 1.0
	if b.VelocityY < 0 {
		multiplier = p.FallMultiplier
	}
	b.VelocityY += p.Gravity * multiplier * dt
	b.VelocityY = math.Max(b.VelocityY, p.TerminalVelocity)
	b.Height += b.VelocityY * dt

	if b.Height <= b.MinHeight {
		return Land(b), true
	}
	return b, false
}

// Land snaps the body to its minimum height and zeroes vertical velocity.
func Land(b Body) Body {
	b.Height = b.MinHeight
	b.VelocityY = 0
	b.Grounded = true
	return b
}

// Jump launches a grounded body. Airborne bodies are returned unchanged and
// the second result is false.
func Jump(b Body, force float64) (Body, bool) {
	if !b.Grounded {
		return b, false
	}
	b.VelocityY = force
	b.Grounded = false
	return b, true
}

// SnapToGround moves a grounded body onto a sampled surface height, which
// also becomes its new minimum height.
func SnapToGround(b Body, groundY float64) Body {
	b.MinHeight = groundY
	b.Height = groundY
	return b
}
