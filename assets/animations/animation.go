package animations

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip is a named animation track loaded with a model.
type Clip struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"` // seconds
}

// Action is the playback state of one clip: time cursor, blend weight and
// time scale. Weight changes requested by a cross-fade are driven by tweens
// and advance with Update.
type Action struct {
	Clip Clip

	time      float64
	weight    float64
	timeScale float64
	playing   bool
	Looped    bool

	fade        *gween.Tween
	stopOnFaded bool
}

func NewAction(clip Clip) *Action {
	return &Action{
		Clip:      clip,
		weight:    1,
		timeScale: 1,
	}
}

// Update advances the time cursor and any running weight fade.
func (a *Action) Update(dt float64) {
	if !a.playing {
		return
	}

	if a.fade != nil {
		w, finished := a.fade.Update(float32(dt))
		a.weight = float64(w)
		if finished {
			a.fade = nil
			if a.stopOnFaded {
				a.stopOnFaded = false
				a.Stop()
				return
			}
		}
	}

	a.time += dt * a.timeScale
	if d := a.Clip.Duration; d > 0 && a.time >= d {
		// loop back to the beginning
		a.time = math.Mod(a.time, d)
		a.Looped = true
	}
}

// Play starts the action without touching its time cursor or weight.
func (a *Action) Play() {
	a.playing = true
}

// Stop halts playback and rewinds.
func (a *Action) Stop() {
	a.playing = false
	a.fade = nil
	a.stopOnFaded = false
	a.Reset()
}

// Reset rewinds the action to the start of its clip.
func (a *Action) Reset() {
	a.time = 0
	a.Looped = false
}

func (a *Action) SetEffectiveWeight(w float64) {
	a.fade = nil
	a.stopOnFaded = false
	a.weight = w
}

func (a *Action) SetEffectiveTimeScale(s float64) {
	a.timeScale = s
}

// CrossFadeFrom fades this action in while prev fades out over seconds.
// prev stops once its weight reaches zero.
func (a *Action) CrossFadeFrom(prev *Action, seconds float64) {
	if seconds <= 0 {
		a.SetEffectiveWeight(1)
		if prev != nil && prev != a {
			prev.Stop()
		}
		return
	}

	a.fade = gween.New(0, 1, float32(seconds), ease.Linear)
	a.weight = 0
	a.stopOnFaded = false

	if prev == nil || prev == a {
		return
	}
	prev.fade = gween.New(float32(prev.weight), 0, float32(seconds), ease.Linear)
	prev.stopOnFaded = true
}

func (a *Action) Time() float64      { return a.time }
func (a *Action) Weight() float64    { return a.weight }
func (a *Action) TimeScale() float64 { return a.timeScale }
func (a *Action) IsPlaying() bool    { return a.playing }
func (a *Action) IsFading() bool     { return a.fade != nil }
