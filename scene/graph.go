// Package scene holds plain host-side collaborators for the character
// controller: a scene graph, a chase camera, static buildings and a terrain
// surface. Renderers read from them; nothing here draws.
package scene

import "github.com/automoto/thirdperson/assets"

// Graph is the attach point for loaded models.
type Graph struct {
	models []*assets.Model
}

func NewGraph() *Graph {
	return &Graph{}
}

// Add attaches m. Adding the same model twice is a no-op.
func (g *Graph) Add(m *assets.Model) {
	if m == nil || g.Contains(m) {
		return
	}
	g.models = append(g.models, m)
}

func (g *Graph) Contains(m *assets.Model) bool {
	for _, existing := range g.models {
		if existing == m {
			return true
		}
	}
	return false
}

// Models returns the attached models in insertion order.
func (g *Graph) Models() []*assets.Model {
	return append([]*assets.Model(nil), g.models...)
}
