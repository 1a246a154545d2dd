package animations

import "sort"

// Mixer owns the actions of one character and blends between them. At most
// one action is current; a cross-fade in progress blocks further requests
// until its countdown expires.
type Mixer struct {
	actions map[string]*Action
	current *Action

	transitioning  bool
	transitionLeft float64
}

func NewMixer(clips []Clip) *Mixer {
	m := &Mixer{actions: make(map[string]*Action, len(clips))}
	for _, clip := range clips {
		m.actions[clip.Name] = NewAction(clip)
	}
	return m
}

// Play requests the named action with a cross-fade of fade seconds and
// reports whether the request was honoured. Unknown names, the current
// action and any request made while a cross-fade is running are ignored.
func (m *Mixer) Play(name string, fade float64) bool {
	next, ok := m.actions[name]
	if !ok || m.transitioning {
		return false
	}
	if m.current == next {
		return false
	}

	if m.current != nil {
		m.transitioning = true
		m.transitionLeft = fade

		next.Reset()
		next.SetEffectiveTimeScale(1)
		next.SetEffectiveWeight(1)
		next.Play()
		next.CrossFadeFrom(m.current, fade)
	} else {
		next.Play()
	}

	m.current = next
	return true
}

// Update advances every playing action and the transition countdown.
func (m *Mixer) Update(dt float64) {
	for _, a := range m.actions {
		a.Update(dt)
	}

	if m.transitioning {
		m.transitionLeft -= dt
		if m.transitionLeft <= 0 {
			m.transitioning = false
			m.transitionLeft = 0
		}
	}
}

// Current returns the name of the current action, or "" when none.
func (m *Mixer) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Clip.Name
}

func (m *Mixer) Transitioning() bool {
	return m.transitioning
}

// Action returns the named action, or nil.
func (m *Mixer) Action(name string) *Action {
	return m.actions[name]
}

func (m *Mixer) Has(name string) bool {
	_, ok := m.actions[name]
	return ok
}

// Names returns the clip names in sorted order.
func (m *Mixer) Names() []string {
	names := make([]string, 0, len(m.actions))
	for name := range m.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
