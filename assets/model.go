package assets

import (
	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/shared/gamemath"
)

// Mesh is one drawable part of a model.
type Mesh struct {
	Name          string
	Bounds        gamemath.Box // local space
	CastShadow    bool
	ReceiveShadow bool
}

// Model is a loaded character asset: its mesh parts and animation clips.
type Model struct {
	Name   string
	Meshes []*Mesh
	Clips  []animations.Clip

	// Placeholder is set on the stand-in capsule used after a failed load.
	Placeholder bool
}

// Traverse calls fn for every mesh part.
func (m *Model) Traverse(fn func(*Mesh)) {
	for _, mesh := range m.Meshes {
		fn(mesh)
	}
}

// Bounds returns the union of the mesh bounds.
func (m *Model) Bounds() gamemath.Box {
	b := gamemath.EmptyBox()
	m.Traverse(func(mesh *Mesh) {
		b = b.Union(mesh.Bounds)
	})
	return b
}

// EnableShadows turns on shadow casting and receiving for every mesh part.
func (m *Model) EnableShadows() {
	m.Traverse(func(mesh *Mesh) {
		mesh.CastShadow = true
		mesh.ReceiveShadow = true
	})
}

// ClipNames lists clip names in load order.
func (m *Model) ClipNames() []string {
	names := make([]string, len(m.Clips))
	for i, c := range m.Clips {
		names[i] = c.Name
	}
	return names
}
