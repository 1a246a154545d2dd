package controller

import (
	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
)

type Option func(*CharacterController)

// WithLoader replaces the bundled manifest loader.
func WithLoader(l assets.Loader) Option {
	return func(c *CharacterController) {
		c.loader = l
	}
}

func WithModelPath(path string) Option {
	return func(c *CharacterController) {
		c.modelPath = path
	}
}

// WithTuning replaces the default configuration. Invalid tuning is ignored
// and logged.
func WithTuning(t config.Tuning) Option {
	return func(c *CharacterController) {
		c.tuning = t
	}
}

// WithSpawn places the character somewhere other than the origin.
func WithSpawn(p mgl64.Vec3) Option {
	return func(c *CharacterController) {
		c.spawn = p
	}
}
