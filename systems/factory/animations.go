package factory

import (
	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/components"
)

// GenerateAnimations builds the mixer for a model's clips and starts the
// first start clip the model provides.
func GenerateAnimations(clips []animations.Clip, startClips []string) *components.AnimationData {
	mixer := animations.NewMixer(clips)
	for _, name := range startClips {
		if mixer.Has(name) {
			mixer.Play(name, 0)
			break
		}
	}
	return &components.AnimationData{Mixer: mixer}
}
