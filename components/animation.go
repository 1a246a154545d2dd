package components

import (
	"github.com/automoto/thirdperson/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Mixer *animations.Mixer
}

// SetAnimation asks the mixer for a cross-fade to name. It reports whether
// the request was accepted.
func (a *AnimationData) SetAnimation(name string, fade float64) bool {
	if a.Mixer == nil {
		return false
	}
	return a.Mixer.Play(name, fade)
}

// Current returns the active clip name, or "" without a mixer.
func (a *AnimationData) Current() string {
	if a.Mixer == nil {
		return ""
	}
	return a.Mixer.Current()
}

var Animation = donburi.NewComponentType[AnimationData]()
