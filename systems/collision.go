package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CheckCollisions reports whether the character may move by move. It never
// mutates state; callers apply the displacement themselves.
func CheckCollisions(w donburi.World, move mgl64.Vec3) bool {
	s := settings(w)
	e, ok := tags.Character.First(w)
	if s == nil || !ok {
		return true
	}
	return checkCollisions(w, e, s, move)
}

func checkCollisions(w donburi.World, e *donburi.Entry, s *components.SettingsData, move mgl64.Vec3) bool {
	predicted := components.Transform.Get(e).Position.Add(move)
	if !s.Tuning.Bounds().Contains(predicted) {
		return false
	}

	// Placeholder or not loaded yet: bounds only
	if !e.HasComponent(components.Collider) {
		return true
	}

	// The local box is placed at the predicted position, not the stored
	// world box, so the check does not depend on previous moves.
	box := components.Collider.Get(e).Local.Translate(predicted)
	for _, obstacle := range obstacleCandidates(w, e, move, box) {
		if box.Intersects(obstacle.Box) {
			return false
		}
	}
	return true
}

// obstacleCandidates narrows the obstacle list with the resolv grid. The grid
// only answers for footprints it covers: a predicted box reaching past it
// falls back to every obstacle, and obstacles reaching past it are always
// candidates.
func obstacleCandidates(w donburi.World, e *donburi.Entry, move mgl64.Vec3, box gamemath.Box) []*components.ObstacleData {
	spaceEntry, hasSpace := components.Space.First(w)
	if !hasSpace || !e.HasComponent(components.Object) {
		return allObstacles(w)
	}
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return allObstacles(w)
	}
	sd := components.Space.Get(spaceEntry)
	if !sd.Covers(box) {
		return allObstacles(w)
	}

	seen := map[*donburi.Entry]bool{}
	var candidates []*components.ObstacleData
	add := func(entry *donburi.Entry) {
		if seen[entry] {
			return
		}
		seen[entry] = true
		candidates = append(candidates, components.Obstacle.Get(entry))
	}

	dx, dy := sd.Delta(move)
	if check := obj.Check(dx, dy, tags.ResolvObstacle); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvObstacle) {
			if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
				add(entry)
			}
		}
	}

	components.Obstacle.Each(w, func(entry *donburi.Entry) {
		if !sd.Covers(components.Obstacle.Get(entry).Box) {
			add(entry)
		}
	})
	return candidates
}

func allObstacles(w donburi.World) []*components.ObstacleData {
	var all []*components.ObstacleData
	components.Obstacle.Each(w, func(entry *donburi.Entry) {
		all = append(all, components.Obstacle.Get(entry))
	})
	return all
}
