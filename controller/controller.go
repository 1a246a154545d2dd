// Package controller drives a third-person character: model loading,
// animation cross-fades, vertical physics, collision against world bounds
// and static obstacles, and a chase camera.
//
// A CharacterController is owned by one goroutine, normally the host's frame
// loop. Only the model loader runs elsewhere and it hands its result back
// through Pending.
package controller

import (
	"context"
	"log"

	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Scene is the host attach point for the loaded model or the placeholder.
type Scene interface {
	Add(m *assets.Model)
}

type (
	CameraRig = components.CameraRig
	Bounded   = components.Bounded
	Surface   = components.Surface
)

type CharacterController struct {
	world     donburi.World
	character *donburi.Entry
	settings  *donburi.Entry

	scene     Scene
	loader    assets.Loader
	modelPath string
	tuning    config.Tuning
	spawn     mgl64.Vec3

	systems []func(donburi.World)

	pending  *Pending
	model    *assets.Model
	degraded bool
	closed   bool
}

// New builds a controller without touching the file system or starting any
// goroutine. Call Init to load the model.
func New(scene Scene, camera CameraRig, opts ...Option) *CharacterController {
	c := &CharacterController{
		scene:  scene,
		tuning: config.Defaults(),
		systems: []func(donburi.World){
			systems.UpdateMixer,
			systems.UpdatePhysics,
			systems.UpdateMovement,
			systems.UpdateStates,
			systems.UpdateAnimation,
			systems.UpdateCamera,
			systems.UpdateTerrain,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.tuning.Validate(); err != nil {
		log.Printf("[character] ignoring tuning: %v", err)
		c.tuning = config.Defaults()
	}
	if c.loader == nil {
		c.loader = assets.NewModelLoader()
	}
	if c.modelPath == "" {
		c.modelPath = c.tuning.Character.ModelPath
	}

	c.world = donburi.NewWorld()
	c.settings = factory.CreateSettings(c.world, c.tuning)
	factory.CreateSpace(c.world, c.tuning.Bounds(), c.tuning.Space)
	factory.CreateCamera(c.world, camera)
	c.character = factory.CreateCharacter(c.world, c.spawn, c.tuning)

	return c
}

// Init starts loading the model. Calling it again returns the same handle.
func (c *CharacterController) Init(ctx context.Context) *Pending {
	if c.pending == nil {
		c.pending = c.startLoad(ctx)
	}
	return c.pending
}

// poll applies a finished load, if any.
func (c *CharacterController) poll() {
	if c.pending == nil || c.model != nil || c.closed {
		return
	}
	if r, ok := c.pending.take(); ok {
		c.apply(r)
	}
}

func (c *CharacterController) apply(r loadResult) {
	if r.err != nil || r.model == nil {
		log.Printf("[character] model load failed: %v", r.err)
		c.model = factory.AttachPlaceholder(c.character, c.tuning)
		c.degraded = true
		c.scene.Add(c.model)
		return
	}

	log.Printf("[character] available clips: %v", r.model.ClipNames())
	factory.AttachModel(c.world, c.character, r.model, c.tuning)
	c.model = r.model
	c.scene.Add(c.model)
	systems.UpdateCamera(c.world)
}

// Update advances one frame. It does nothing until a model, or the
// placeholder, is present.
func (c *CharacterController) Update(dt float64) {
	c.poll()
	if c.model == nil || c.closed {
		return
	}

	components.Settings.Get(c.settings).Delta = dt
	for _, system := range c.systems {
		system(c.world)
	}
}

// Move stores a horizontal movement intent. The vertical component is
// dropped and the zero vector stops the character.
func (c *CharacterController) Move(dir mgl64.Vec3) {
	components.Character.Get(c.character).Direction = gamemath.Flatten(dir)
}

// Jump launches the character when it is grounded and reports whether it
// did.
func (c *CharacterController) Jump() bool {
	return systems.Jump(c.world)
}

// AddBuilding registers a static obstacle. Its box is captured now.
func (c *CharacterController) AddBuilding(ref Bounded) {
	factory.CreateObstacle(c.world, ref)
}

// RefreshBuilding recaptures the box of a registered obstacle that has
// moved. It reports false for unknown objects.
func (c *CharacterController) RefreshBuilding(ref Bounded) bool {
	return factory.RefreshObstacle(c.world, ref)
}

// SetTerrain sets the surface sampled for ground height. Nil disables it.
func (c *CharacterController) SetTerrain(surface Surface) {
	factory.SetTerrain(c.world, surface)
}

// CheckCollisions reports whether moving by move would keep the character
// inside the world bounds and clear of every obstacle. It moves nothing.
func (c *CharacterController) CheckCollisions(move mgl64.Vec3) bool {
	return systems.CheckCollisions(c.world, move)
}

// PlayAnimation requests a cross-fade to name. It is a no-op returning false
// for unknown clips, the current clip, a fade in progress, or no clips at
// all.
func (c *CharacterController) PlayAnimation(name string, fade float64) bool {
	if !c.character.HasComponent(components.Animation) {
		return false
	}
	return components.Animation.Get(c.character).SetAnimation(name, fade)
}

func (c *CharacterController) CurrentAnimation() string {
	if !c.character.HasComponent(components.Animation) {
		return ""
	}
	return components.Animation.Get(c.character).Current()
}

func (c *CharacterController) Transitioning() bool {
	if !c.character.HasComponent(components.Animation) {
		return false
	}
	mixer := components.Animation.Get(c.character).Mixer
	return mixer != nil && mixer.Transitioning()
}

// Ready reports whether a model or the placeholder is in place.
func (c *CharacterController) Ready() bool {
	return c.model != nil
}

// Degraded reports whether the load failed and the placeholder is in use.
func (c *CharacterController) Degraded() bool {
	return c.degraded
}

// Model returns the attached model, or nil before the load finishes.
func (c *CharacterController) Model() *assets.Model {
	return c.model
}

func (c *CharacterController) Tuning() config.Tuning {
	return c.tuning
}

// SetTuning swaps the configuration between frames. The collision grid is
// rebuilt when the world bounds or grid settings change.
func (c *CharacterController) SetTuning(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	rebuild := t.World != c.tuning.World || t.Space != c.tuning.Space

	c.tuning = t
	components.Settings.Get(c.settings).Tuning = t
	if rebuild {
		factory.RebuildSpace(c.world, t.Bounds(), t.Space)
	}
	return nil
}

// Close abandons an in-flight load. Later results are discarded and Update
// does nothing.
func (c *CharacterController) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.cancel()
	}
}
