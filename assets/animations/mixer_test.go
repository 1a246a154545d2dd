package animations

import (
	"math"
	"testing"
)

func testClips() []Clip {
	return []Clip{
		{Name: "Idle", Duration: 2},
		{Name: "Walking", Duration: 1},
		{Name: "Jump", Duration: 0.8},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestMixerFirstPlayStartsDirectly(t *testing.T) {
	m := NewMixer(testClips())
	if !m.Play("Idle", 0.2) {
		t.Fatalf("first Play should be honoured")
	}
	if m.Current() != "Idle" {
		t.Fatalf("Current = %q, want Idle", m.Current())
	}
	if m.Transitioning() {
		t.Fatalf("first Play must not start a transition")
	}
	if a := m.Action("Idle"); !a.IsPlaying() || a.Weight() != 1 {
		t.Fatalf("Idle should play at full weight, got playing=%v weight=%v", a.IsPlaying(), a.Weight())
	}
}

func TestMixerPlayNoops(t *testing.T) {
	cases := []struct {
		name  string
		setup func(m *Mixer)
		play  string
	}{
		{"unknown_clip", func(m *Mixer) { m.Play("Idle", 0.2) }, "Dance"},
		{"already_current", func(m *Mixer) { m.Play("Idle", 0.2) }, "Idle"},
		{"transition_in_progress", func(m *Mixer) {
			m.Play("Idle", 0.2)
			m.Play("Walking", 0.2)
		}, "Jump"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMixer(testClips())
			c.setup(m)
			before := m.Current()
			wasTransitioning := m.Transitioning()
			if m.Play(c.play, 0.2) {
				t.Fatalf("Play(%q) should be ignored", c.play)
			}
			if m.Current() != before || m.Transitioning() != wasTransitioning {
				t.Fatalf("ignored Play changed state: current %q -> %q", before, m.Current())
			}
		})
	}
}

func TestMixerCrossFade(t *testing.T) {
	m := NewMixer(testClips())
	m.Play("Idle", 0.2)
	m.Update(0.5)

	if !m.Play("Walking", 0.2) {
		t.Fatalf("Play(Walking) should start a cross-fade")
	}
	if !m.Transitioning() {
		t.Fatalf("cross-fade should set the transition flag")
	}
	walk, idle := m.Action("Walking"), m.Action("Idle")
	if walk.Time() != 0 || !walk.IsPlaying() || walk.TimeScale() != 1 {
		t.Fatalf("Walking should be reset and playing: %+v", walk)
	}

	m.Update(0.1)
	if !approx(walk.Weight(), 0.5) || !approx(idle.Weight(), 0.5) {
		t.Fatalf("mid-fade weights = walk %v idle %v, want 0.5 each", walk.Weight(), idle.Weight())
	}
	if !m.Transitioning() {
		t.Fatalf("transition should still be running halfway through")
	}

	m.Update(0.1)
	m.Update(0.01)
	if m.Transitioning() {
		t.Fatalf("transition flag should clear once the fade time elapsed")
	}
	if !approx(walk.Weight(), 1) {
		t.Fatalf("Walking weight = %v, want 1", walk.Weight())
	}
	if idle.IsPlaying() {
		t.Fatalf("Idle should stop after fading out")
	}
}

func TestMixerDropsRequestDuringFade(t *testing.T) {
	m := NewMixer(testClips())
	m.Play("Idle", 0.2)
	m.Play("Walking", 0.2)
	m.Update(0.05)

	if m.Play("Jump", 0.1) {
		t.Fatalf("request during an in-flight fade should be dropped")
	}
	if m.Current() != "Walking" {
		t.Fatalf("Current = %q, want Walking", m.Current())
	}

	m.Update(0.2)
	if !m.Play("Jump", 0.1) {
		t.Fatalf("request after the fade should be honoured")
	}
}

func TestMixerZeroFadeClearsOnNextUpdate(t *testing.T) {
	m := NewMixer(testClips())
	m.Play("Idle", 0)
	m.Play("Walking", 0)
	if m.Action("Idle").IsPlaying() {
		t.Fatalf("zero fade should stop the previous action immediately")
	}
	m.Update(0.016)
	if m.Transitioning() {
		t.Fatalf("zero fade transition should clear on the next update")
	}
}

func TestActionLoops(t *testing.T) {
	a := NewAction(Clip{Name: "Walking", Duration: 1})
	a.Play()
	a.Update(0.75)
	a.Update(0.5)
	if !approx(a.Time(), 0.25) || !a.Looped {
		t.Fatalf("time = %v looped = %v, want 0.25 true", a.Time(), a.Looped)
	}
}

func TestMixerNames(t *testing.T) {
	m := NewMixer(testClips())
	got := m.Names()
	want := []string{"Idle", "Jump", "Walking"}
	if len(got) != len(want) {
		t.Fatalf("Names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
}
