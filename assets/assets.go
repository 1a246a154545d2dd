package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:models
	modelFS embed.FS

	//go:embed all:levels
	levelFS embed.FS
)

// DefaultModelPath is the manifest of the bundled character.
const DefaultModelPath = "models/character.yaml"

// DefaultLevelPath is the bundled scene layout.
const DefaultLevelPath = "levels/plaza.tmx"

// NewModelLoader returns a loader over the bundled model manifests.
func NewModelLoader() *ManifestLoader {
	return NewManifestLoader(modelFS)
}

// LevelFS exposes the bundled scene layouts.
func LevelFS() fs.FS {
	return levelFS
}
