package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidModel is wrapped by every manifest validation failure.
var ErrInvalidModel = errors.New("invalid model")

// Loader fetches a character model. Implementations may block; callers run
// them off the frame loop.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// ManifestSpec is the on-disk description of a model.
type ManifestSpec struct {
	Name   string            `yaml:"name"`
	Scale  float64           `yaml:"scale"`
	Meshes []MeshSpec        `yaml:"meshes"`
	Clips  []animations.Clip `yaml:"clips"`
}

type MeshSpec struct {
	Name string     `yaml:"name"`
	Min  mgl64.Vec3 `yaml:"min"`
	Max  mgl64.Vec3 `yaml:"max"`
}

// ManifestLoader reads YAML model manifests from a file system.
type ManifestLoader struct {
	FS fs.FS
}

func NewManifestLoader(fsys fs.FS) *ManifestLoader {
	return &ManifestLoader{FS: fsys}
}

func (l *ManifestLoader) Load(ctx context.Context, path string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}

	var spec ManifestSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("assets: unmarshal %s: %w", path, err)
	}

	model, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return model, nil
}

// Build validates the manifest and converts it into a Model.
func (s ManifestSpec) Build() (*Model, error) {
	if len(s.Meshes) == 0 {
		return nil, fmt.Errorf("%w: no meshes", ErrInvalidModel)
	}

	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: negative scale %v", ErrInvalidModel, scale)
	}

	model := &Model{Name: s.Name}
	for _, ms := range s.Meshes {
		b := gamemath.Box{Min: ms.Min, Max: ms.Max}
		if b.IsEmpty() {
			return nil, fmt.Errorf("%w: mesh %q has inverted bounds", ErrInvalidModel, ms.Name)
		}
		model.Meshes = append(model.Meshes, &Mesh{Name: ms.Name, Bounds: b.Scale(scale)})
	}

	seen := make(map[string]bool, len(s.Clips))
	for _, c := range s.Clips {
		switch {
		case c.Name == "":
			return nil, fmt.Errorf("%w: clip without a name", ErrInvalidModel)
		case c.Duration <= 0:
			return nil, fmt.Errorf("%w: clip %q has duration %v", ErrInvalidModel, c.Name, c.Duration)
		case seen[c.Name]:
			return nil, fmt.Errorf("%w: duplicate clip %q", ErrInvalidModel, c.Name)
		}
		seen[c.Name] = true
		model.Clips = append(model.Clips, c)
	}

	return model, nil
}
