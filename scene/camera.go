package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a look-at camera. The controller positions it every frame.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

func NewCamera() *Camera {
	return &Camera{
		Target: mgl64.Vec3{0, 0, 1},
		Up:     mgl64.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
}

func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Forward returns the unit view direction, or +Z when position and target
// coincide.
func (c *Camera) Forward() mgl64.Vec3 {
	d := c.Target.Sub(c.Position)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return d.Normalize()
}
