package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// objectMargin pads every footprint by one resolv unit. resolv registers an
// object over [X, X+W-1], so the pad keeps edge contacts in shared cells.
const objectMargin = 1.0

// SpaceData is the resolv grid laid over the XZ plane. World X maps to space
// X and world Z to space Y, shifted by the origin and scaled by Resolution.
type SpaceData struct {
	*resolv.Space
	OriginX    float64
	OriginZ    float64
	Resolution float64
}

// Rect converts the XZ footprint of box into space coordinates.
func (s *SpaceData) Rect(box gamemath.Box) (x, y, w, h float64) {
	size := box.Size()
	x = (box.Min.X()-s.OriginX)*s.Resolution - objectMargin
	y = (box.Min.Z()-s.OriginZ)*s.Resolution - objectMargin
	w = size.X()*s.Resolution + 2*objectMargin
	h = size.Z()*s.Resolution + 2*objectMargin
	return x, y, w, h
}

// Covers reports whether the padded footprint of box lies entirely inside
// the grid. Cells outside the grid do not exist, so objects reaching past it
// are only partly registered.
func (s *SpaceData) Covers(box gamemath.Box) bool {
	x, y, w, h := s.Rect(box)
	width := float64(s.Width() * s.CellWidth)
	depth := float64(s.Height() * s.CellHeight)
	return x >= 0 && y >= 0 && x+w <= width && y+h <= depth
}

// NewObject creates a rectangle over box and adds it to the space.
func (s *SpaceData) NewObject(box gamemath.Box, tags ...string) *resolv.Object {
	x, y, w, h := s.Rect(box)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.Add(obj)
	return obj
}

// Place moves obj over box and refreshes the cells it touches.
func (s *SpaceData) Place(obj *resolv.Object, box gamemath.Box) {
	x, y, w, h := s.Rect(box)
	obj.X, obj.Y = x, y
	if obj.W != w || obj.H != h {
		obj.W, obj.H = w, h
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	obj.Update()
}

// Delta converts a world displacement into a space displacement.
func (s *SpaceData) Delta(move mgl64.Vec3) (dx, dy float64) {
	return move.X() * s.Resolution, move.Z() * s.Resolution
}

var Space = donburi.NewComponentType[SpaceData]()
