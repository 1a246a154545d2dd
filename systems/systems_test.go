package systems

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type building struct {
	box gamemath.Box
}

func (b *building) Bounds() gamemath.Box { return b.box }

type flatSurface struct {
	height float64
}

func (s flatSurface) IntersectRay(origin, dir mgl64.Vec3) (mgl64.Vec3, bool) {
	if dir.Y() >= 0 || origin.Y() < s.height {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{origin.X(), s.height, origin.Z()}, true
}

type recordingRig struct {
	position, target mgl64.Vec3
	calls            int
}

func (r *recordingRig) SetPosition(p mgl64.Vec3) { r.position = p; r.calls++ }
func (r *recordingRig) LookAt(t mgl64.Vec3)      { r.target = t }

func box(minX, minY, minZ, maxX, maxY, maxZ float64) gamemath.Box {
	return gamemath.Box{Min: mgl64.Vec3{minX, minY, minZ}, Max: mgl64.Vec3{maxX, maxY, maxZ}}
}

// newTestWorld builds a world with a loaded character whose collision box is
// 1x2x1 (a 2x2x2 model shrunk to a quarter on X and Z).
func newTestWorld(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	return newSizedWorld(t, 0.5)
}

// newSizedWorld is newTestWorld with a collision box of the given half-width
// on X and Z.
func newSizedWorld(t *testing.T, half float64) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	tuning := cfg.Defaults()
	factory.CreateSettings(w, tuning)
	factory.CreateSpace(w, tuning.Bounds(), tuning.Space)

	e := factory.CreateCharacter(w, mgl64.Vec3{}, tuning)
	model := &assets.Model{
		Name:   "test",
		Meshes: []*assets.Mesh{{Name: "body", Bounds: box(-2*half, 0, -2*half, 2*half, 2, 2*half)}},
		Clips: []animations.Clip{
			{Name: "Idle", Duration: 1},
			{Name: "Walking", Duration: 1},
			{Name: "Jump", Duration: 1},
		},
	}
	factory.AttachModel(w, e, model, tuning)
	return w, e
}

func setDelta(w donburi.World, dt float64) {
	settings(w).Delta = dt
}

func moveTo(w donburi.World, e *donburi.Entry, p mgl64.Vec3) {
	components.Transform.Get(e).Position = p
	UpdateObjects(w)
}

func TestAttachModelCollider(t *testing.T) {
	_, e := newTestWorld(t)
	c := components.Collider.Get(e)
	want := box(-0.5, 0, -0.5, 0.5, 2, 0.5)
	if c.Local != want || c.World != want {
		t.Fatalf("collider = %+v, want %+v", c, want)
	}
	if got := components.Animation.Get(e).Current(); got != "Idle" {
		t.Fatalf("start clip = %q, want Idle", got)
	}
	for _, m := range components.Model.Get(e).Meshes {
		if !m.CastShadow || !m.ReceiveShadow {
			t.Fatalf("mesh %s should have shadows enabled", m.Name)
		}
	}
}

func TestCheckCollisions(t *testing.T) {
	tests := []struct {
		name     string
		start    mgl64.Vec3
		move     mgl64.Vec3
		obstacle gamemath.Box
		want     bool
	}{
		{name: "clear", move: mgl64.Vec3{0.4, 0, 0}, obstacle: box(1, 0, -1, 2, 3, 1), want: true},
		{name: "touching edge", move: mgl64.Vec3{0.5, 0, 0}, obstacle: box(1, 0, -1, 2, 3, 1), want: false},
		{name: "overlap positive x", move: mgl64.Vec3{0.8, 0, 0}, obstacle: box(1, 0, -1, 2, 3, 1), want: false},
		{name: "overlap negative x", move: mgl64.Vec3{-0.6, 0, 0}, obstacle: box(-2, 0, -1, -1, 3, 1), want: false},
		{name: "overlap negative z", move: mgl64.Vec3{0, 0, -0.6}, obstacle: box(-1, 0, -2, 1, 3, -1), want: false},
		{name: "above the box", move: mgl64.Vec3{0.8, 0, 0}, obstacle: box(1, 2.5, -1, 2, 3, 1), want: true},
		{name: "far away", move: mgl64.Vec3{0.1, 0, 0.1}, obstacle: box(30, 0, 30, 35, 5, 35), want: true},
		{name: "beyond max x", start: mgl64.Vec3{49.95, 0, 0}, move: mgl64.Vec3{0.1, 0, 0}, obstacle: box(30, 0, 30, 35, 5, 35), want: false},
		{name: "beyond min z", start: mgl64.Vec3{0, 0, -49.95}, move: mgl64.Vec3{0, 0, -0.1}, obstacle: box(30, 0, 30, 35, 5, 35), want: false},
		{name: "on the edge", start: mgl64.Vec3{49.9, 0, 0}, move: mgl64.Vec3{0.1, 0, 0}, obstacle: box(30, 0, 30, 35, 5, 35), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e := newTestWorld(t)
			moveTo(w, e, tt.start)
			factory.CreateObstacle(w, &building{box: tt.obstacle})

			if got := CheckCollisions(w, tt.move); got != tt.want {
				t.Fatalf("CheckCollisions(%v) = %v, want %v", tt.move, got, tt.want)
			}
			if p := components.Transform.Get(e).Position; p != tt.start {
				t.Fatalf("CheckCollisions moved the character to %v", p)
			}
		})
	}
}

// The grid covers the world bounds plus padding. Boxes reaching past it must
// still be tested exactly.
func TestCheckCollisionsOutsideGrid(t *testing.T) {
	tests := []struct {
		name     string
		half     float64
		start    mgl64.Vec3
		move     mgl64.Vec3
		obstacle gamemath.Box
		want     bool
	}{
		{
			name:     "wide box reaches obstacle outside grid",
			half:     20,
			start:    mgl64.Vec3{44.8, 0, 2.79},
			move:     mgl64.Vec3{0.21, 0, 0.28},
			obstacle: box(54.12, 0, -6.99, 54.58, 3, -3.58),
			want:     false,
		},
		{
			name:     "wide box clear of obstacle outside grid",
			half:     20,
			start:    mgl64.Vec3{44.8, 0, 0},
			move:     mgl64.Vec3{0.1, 0, 0},
			obstacle: box(70, 0, -1, 72, 3, 1),
			want:     true,
		},
		{
			name:     "obstacle straddles grid edge",
			half:     0.5,
			start:    mgl64.Vec3{49, 0, 0},
			move:     mgl64.Vec3{0.5, 0, 0},
			obstacle: box(49.8, 0, -1, 60, 3, 1),
			want:     false,
		},
		{
			name:     "wide box inside negative corner",
			half:     6,
			start:    mgl64.Vec3{-49.5, 0, -49.5},
			move:     mgl64.Vec3{-0.2, 0, -0.2},
			obstacle: box(-58, 0, -58, -55, 3, -55),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e := newSizedWorld(t, tt.half)
			moveTo(w, e, tt.start)
			factory.CreateObstacle(w, &building{box: tt.obstacle})

			if got := CheckCollisions(w, tt.move); got != tt.want {
				t.Fatalf("CheckCollisions(%v) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

// The grid only narrows the search, so its answer must match testing every
// obstacle directly.
func TestCheckCollisionsMatchesExactBoxTest(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	between := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

	for _, half := range []float64{0.5, 2, 20} {
		t.Run(fmt.Sprintf("half=%v", half), func(t *testing.T) {
			for i := 0; i < 300; i++ {
				w, e := newSizedWorld(t, half)
				start := mgl64.Vec3{between(-50, 50), 0, between(-50, 50)}
				move := mgl64.Vec3{between(-0.5, 0.5), 0, between(-0.5, 0.5)}
				cx, cz := between(-60, 60), between(-60, 60)
				sx, sz := between(0.2, 6), between(0.2, 6)
				obstacle := box(cx-sx, 0, cz-sz, cx+sx, 3, cz+sz)

				moveTo(w, e, start)
				factory.CreateObstacle(w, &building{box: obstacle})

				predicted := start.Add(move)
				want := settings(w).Tuning.Bounds().Contains(predicted) &&
					!components.Collider.Get(e).Local.Translate(predicted).Intersects(obstacle)
				if got := CheckCollisions(w, move); got != want {
					t.Fatalf("start=%v move=%v obstacle=%+v: got %v, want %v", start, move, obstacle, got, want)
				}
			}
		})
	}
}

func TestCheckCollisionsWithoutCollider(t *testing.T) {
	w := donburi.NewWorld()
	tuning := cfg.Defaults()
	factory.CreateSettings(w, tuning)
	factory.CreateSpace(w, tuning.Bounds(), tuning.Space)
	e := factory.CreateCharacter(w, mgl64.Vec3{}, tuning)
	factory.AttachPlaceholder(e, tuning)
	factory.CreateObstacle(w, &building{box: box(-1, 0, -1, 1, 3, 1)})

	if !CheckCollisions(w, mgl64.Vec3{0.1, 0, 0}) {
		t.Fatalf("obstacles should be skipped without a collision box")
	}
	moveTo(w, e, mgl64.Vec3{50, 0, 0})
	if CheckCollisions(w, mgl64.Vec3{0.1, 0, 0}) {
		t.Fatalf("world bounds should still apply without a collision box")
	}
}

func TestObstacleBoxIsStaticUntilRefreshed(t *testing.T) {
	w, _ := newTestWorld(t)
	b := &building{box: box(5, 0, -1, 6, 3, 1)}
	factory.CreateObstacle(w, b)

	b.box = box(0.2, 0, -1, 1, 3, 1)
	if !CheckCollisions(w, mgl64.Vec3{0.1, 0, 0}) {
		t.Fatalf("a moved object must not affect its captured box")
	}

	if !factory.RefreshObstacle(w, b) {
		t.Fatalf("RefreshObstacle should find the registered obstacle")
	}
	if CheckCollisions(w, mgl64.Vec3{0.1, 0, 0}) {
		t.Fatalf("refreshed box should block the move")
	}

	if factory.RefreshObstacle(w, &building{}) {
		t.Fatalf("RefreshObstacle should report unknown objects")
	}
}

func TestRebuildSpaceKeepsObstacles(t *testing.T) {
	w, e := newTestWorld(t)
	factory.CreateObstacle(w, &building{box: box(1, 0, -1, 2, 3, 1)})

	tuning := cfg.Defaults()
	tuning.World = cfg.WorldConfig{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10}
	tuning.Space.CellSize = 1
	settings(w).Tuning = tuning
	factory.RebuildSpace(w, tuning.Bounds(), tuning.Space)

	if CheckCollisions(w, mgl64.Vec3{0.8, 0, 0}) {
		t.Fatalf("obstacle lost after rebuilding the space")
	}
	moveTo(w, e, mgl64.Vec3{9.95, 0, 5})
	if CheckCollisions(w, mgl64.Vec3{0.1, 0, 0}) {
		t.Fatalf("new bounds not applied")
	}
}

func TestUpdateMovement(t *testing.T) {
	w, e := newTestWorld(t)
	components.Character.Get(e).Direction = mgl64.Vec3{1, 0, 1}

	UpdateMovement(w)

	transform := components.Transform.Get(e)
	tuning := cfg.Defaults()
	wantYaw := gamemath.YawStep(mgl64.Vec3{1, 0, 1}, tuning.Character.RotateSpeed)
	if transform.Yaw != wantYaw {
		t.Fatalf("Yaw = %v, want %v", transform.Yaw, wantYaw)
	}
	want := gamemath.MoveVector(mgl64.Vec3{1, 0, 1}, tuning.Character.MoveSpeed, wantYaw)
	if !transform.Position.ApproxEqual(want) {
		t.Fatalf("Position = %v, want %v", transform.Position, want)
	}
	if got := components.Collider.Get(e).World.Min; !got.ApproxEqual(want.Add(mgl64.Vec3{-0.5, 0, -0.5})) {
		t.Fatalf("world box not re-synced: min %v", got)
	}
}

func TestUpdateMovementBlocked(t *testing.T) {
	w, e := newTestWorld(t)
	factory.CreateObstacle(w, &building{box: box(-3, 0, 0.55, 3, 3, 2)})
	components.Character.Get(e).Direction = mgl64.Vec3{0, 0, 1}

	UpdateMovement(w)

	if p := components.Transform.Get(e).Position; p != (mgl64.Vec3{}) {
		t.Fatalf("blocked move applied: %v", p)
	}
}

func TestUpdatePhysicsJumpAndLand(t *testing.T) {
	w, e := newTestWorld(t)
	setDelta(w, 1.0/60)

	if !Jump(w) {
		t.Fatalf("Jump from the ground should succeed")
	}
	physics := components.Physics.Get(e)
	if physics.VelocityY != 8 || physics.Grounded {
		t.Fatalf("after Jump: %+v", physics)
	}
	if Jump(w) || physics.VelocityY != 8 {
		t.Fatalf("Jump while airborne must change nothing")
	}

	prev := physics.VelocityY
	landed := false
	for i := 0; i < 600; i++ {
		UpdateMixer(w)
		UpdatePhysics(w)
		if physics.Grounded {
			landed = true
			break
		}
		if physics.VelocityY >= prev {
			t.Fatalf("frame %d: velocity did not decrease (%v -> %v)", i, prev, physics.VelocityY)
		}
		prev = physics.VelocityY
		if y := components.Transform.Get(e).Position.Y(); components.Collider.Get(e).World.Min.Y() != y {
			t.Fatalf("world box not following height %v", y)
		}
	}
	if !landed {
		t.Fatalf("character never landed")
	}
	if physics.VelocityY != 0 || components.Transform.Get(e).Position.Y() != 0 {
		t.Fatalf("landing should snap: %+v y=%v", physics, components.Transform.Get(e).Position.Y())
	}
}

func TestUpdateStatesAndAnimation(t *testing.T) {
	w, e := newTestWorld(t)
	setDelta(w, 1.0/60)
	anim := components.Animation.Get(e)
	state := components.State.Get(e)

	components.Character.Get(e).Direction = mgl64.Vec3{0, 0, 1}
	UpdateStates(w)
	UpdateAnimation(w)
	if state.CurrentState != components.StateWalking || anim.Current() != "Walking" {
		t.Fatalf("state %v clip %q, want walking/Walking", state.CurrentState, anim.Current())
	}

	// A second request during the fade is dropped.
	components.Character.Get(e).Direction = mgl64.Vec3{}
	UpdateStates(w)
	UpdateAnimation(w)
	if state.CurrentState != components.StateIdle || anim.Current() != "Walking" {
		t.Fatalf("state %v clip %q, want idle/Walking", state.CurrentState, anim.Current())
	}

	setDelta(w, 0.25)
	UpdateMixer(w)
	UpdateAnimation(w)
	if anim.Current() != "Idle" {
		t.Fatalf("clip %q after the fade, want Idle", anim.Current())
	}
}

func TestUpdateCamera(t *testing.T) {
	w, e := newTestWorld(t)
	rig := &recordingRig{}
	factory.CreateCamera(w, rig)
	moveTo(w, e, mgl64.Vec3{3, 1, -4})

	UpdateCamera(w)

	if rig.calls != 1 {
		t.Fatalf("rig updated %d times", rig.calls)
	}
	if want := (mgl64.Vec3{3, 8, -14}); rig.position != want {
		t.Fatalf("camera position = %v, want %v", rig.position, want)
	}
	if want := (mgl64.Vec3{3, 3, -4}); rig.target != want {
		t.Fatalf("camera target = %v, want %v", rig.target, want)
	}
}

func TestUpdateTerrain(t *testing.T) {
	w, e := newTestWorld(t)
	factory.SetTerrain(w, flatSurface{height: 1.5})

	UpdateTerrain(w)

	physics := components.Physics.Get(e)
	if y := components.Transform.Get(e).Position.Y(); y != 1.5 || physics.MinHeight != 1.5 {
		t.Fatalf("y = %v minHeight = %v, want 1.5", y, physics.MinHeight)
	}

	// Airborne characters are not sampled.
	factory.SetTerrain(w, flatSurface{height: 0.5})
	physics.Grounded = false
	UpdateTerrain(w)
	if physics.MinHeight != 1.5 {
		t.Fatalf("sampled while airborne: minHeight = %v", physics.MinHeight)
	}

	factory.SetTerrain(w, nil)
	physics.Grounded = true
	UpdateTerrain(w)
	if physics.MinHeight != 1.5 {
		t.Fatalf("sampled without a surface: minHeight = %v", physics.MinHeight)
	}
}
