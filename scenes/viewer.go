package scenes

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/thirdperson/assets"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/controller"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/scene"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	groundColor    = color.RGBA{40, 44, 52, 255}
	boundsColor    = color.RGBA{90, 90, 110, 255}
	buildingColor  = color.RGBA{120, 90, 70, 255}
	plateauColor   = color.RGBA{60, 90, 60, 255}
	characterColor = color.RGBA{230, 200, 80, 255}
	colliderColor  = color.RGBA{255, 80, 80, 255}
	cameraColor    = color.RGBA{100, 180, 255, 255}
	hudColor       = color.RGBA{220, 220, 220, 255}
)

// shiftTarget is the building moved by the shift action.
const shiftTarget = "shed"

// ViewerScene hosts one character controller over a TMX layout and draws it
// top-down.
type ViewerScene struct {
	levelPath  string
	tuningPath string

	controller *controller.CharacterController
	pending    *controller.Pending
	graph      *scene.Graph
	camera     *scene.Camera
	layout     *leveldata.Layout
	buildings  []*scene.Building
	plateaus   *scene.Plateaus
	watcher    *cfg.TuningWatcher
	pauseUI    *ui.PauseUI

	terrainOn bool
	paused    bool
	shiftSign float64
	status    string

	once sync.Once
}

// NewViewerScene creates the scene. Loading happens on the first Update.
// An empty tuningPath uses the built-in defaults without hot reload.
func NewViewerScene(levelPath, tuningPath string) *ViewerScene {
	return &ViewerScene{levelPath: levelPath, tuningPath: tuningPath, shiftSign: -1}
}

func (vs *ViewerScene) configure() {
	layout, err := leveldata.LoadLayout(assets.LevelFS(), vs.levelPath)
	if err != nil {
		panic("failed to load layout: " + err.Error())
	}
	vs.layout = layout

	tuning := cfg.Defaults()
	if vs.tuningPath != "" {
		if tuning, err = cfg.LoadTuning(vs.tuningPath); err != nil {
			panic("failed to load tuning: " + err.Error())
		}
		if vs.watcher, err = cfg.WatchTuning(vs.tuningPath); err != nil {
			log.Printf("[viewer] hot reload disabled: %v", err)
		}
	}

	vs.graph = scene.NewGraph()
	vs.camera = scene.NewCamera()
	vs.controller = controller.New(vs.graph, vs.camera,
		controller.WithTuning(tuning),
		controller.WithSpawn(layout.Spawn),
	)

	vs.buildings = scene.BuildingsFromLayout(layout)
	for _, b := range vs.buildings {
		vs.controller.AddBuilding(b)
	}

	vs.plateaus = scene.PlateausFromLayout(layout)
	vs.setTerrain(true)

	vs.pending = vs.controller.Init(context.Background())

	vs.pauseUI = ui.NewPauseUI(vs.togglePause, func() { vs.setTerrain(!vs.terrainOn) }, vs.shiftBuilding)
	vs.pauseUI.SetTuning(tuning)
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		vs.togglePause()
	}
	if vs.paused {
		vs.pauseUI.Update()
		return
	}

	vs.controller.Move(readIntent())
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		vs.controller.Jump()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		vs.setTerrain(!vs.terrainOn)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		vs.shiftBuilding()
	}

	vs.controller.Update(1 / float64(ebiten.TPS()))
}

// readIntent maps WASD and the arrow keys to a character-relative direction.
// Forward is +Z and left is +X.
func readIntent() mgl64.Vec3 {
	var dir mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir[2]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir[2]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir[0]--
	}
	return dir
}

func (vs *ViewerScene) applyReloads() {
	if vs.watcher == nil {
		return
	}
	select {
	case t, ok := <-vs.watcher.Updates:
		if !ok {
			vs.watcher = nil
			return
		}
		if err := vs.controller.SetTuning(t); err != nil {
			vs.setStatus(fmt.Sprintf("tuning rejected: %v", err))
			return
		}
		vs.pauseUI.SetTuning(t)
		vs.setStatus("tuning reloaded")
	default:
	}
}

func (vs *ViewerScene) togglePause() {
	vs.paused = !vs.paused
}

func (vs *ViewerScene) setTerrain(on bool) {
	vs.terrainOn = on
	if on {
		vs.controller.SetTerrain(vs.plateaus)
	} else {
		vs.controller.SetTerrain(nil)
	}
}

// shiftBuilding moves the shed back and forth along X and refreshes its
// collision box.
func (vs *ViewerScene) shiftBuilding() {
	for _, b := range vs.buildings {
		if b.Name != shiftTarget {
			continue
		}
		b.Move(mgl64.Vec3{vs.shiftSign * cfg.Viewer.ShiftStep, 0, 0})
		vs.shiftSign = -vs.shiftSign
		if vs.controller.RefreshBuilding(b) {
			vs.setStatus("shed moved")
		}
		return
	}
}

func (vs *ViewerScene) setStatus(s string) {
	vs.status = s
	if vs.pauseUI != nil {
		vs.pauseUI.SetStatus(s)
	}
}

func (vs *ViewerScene) Close() {
	if vs.controller != nil {
		vs.controller.Close()
	}
	if vs.watcher != nil {
		_ = vs.watcher.Close()
	}
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(groundColor)
	if vs.controller == nil {
		return
	}

	st := vs.controller.State()
	view := newTopDown(screen, st.Position)

	tuning := vs.controller.Tuning()
	view.strokeBox(gamemath.Box{
		Min: mgl64.Vec3{tuning.World.MinX, 0, tuning.World.MinZ},
		Max: mgl64.Vec3{tuning.World.MaxX, 0, tuning.World.MaxZ},
	}, boundsColor)

	if vs.terrainOn {
		for _, b := range vs.plateaus.Boxes {
			view.fillBox(b, plateauColor)
		}
	}
	for _, b := range vs.buildings {
		view.fillBox(b.Bounds(), buildingColor)
	}

	if st.HasCollisionBox {
		view.strokeBox(st.CollisionBox, colliderColor)
	}
	view.marker(st.Position, 4, characterColor)
	heading := st.Position.Add(mgl64.Rotate3DY(st.Yaw).Mul3x1(mgl64.Vec3{0, 0, 1.5}))
	view.line(st.Position, heading, characterColor)
	view.marker(st.Camera, 3, cameraColor)
	view.line(st.Camera, st.CameraTarget, cameraColor)

	vs.drawHUD(screen, st)

	if vs.paused {
		vs.pauseUI.UI.Draw(screen)
	}
}

func (vs *ViewerScene) drawHUD(screen *ebiten.Image, st controller.State) {
	face := fonts.Small.Get()

	load := "loading"
	switch {
	case vs.controller.Degraded():
		load = "placeholder"
	case vs.controller.Ready():
		load = "model"
	}

	lines := []string{
		fmt.Sprintf("pos %.2f %.2f %.2f  yaw %.2f", st.Position.X(), st.Position.Y(), st.Position.Z(), st.Yaw),
		fmt.Sprintf("%s  anim %s  vy %.2f  ground %.2f", st.Locomotion, st.Animation, st.VelocityY, st.MinHeight),
		fmt.Sprintf("%s  terrain %v  meshes %d", load, vs.terrainOn, len(vs.graph.Models())),
		"WASD move  SPACE jump  T terrain  B shift shed  ESC pause",
	}
	if vs.status != "" {
		lines = append(lines, vs.status)
	}
	for i, l := range lines {
		text.Draw(screen, l, face, 8, 16+i*14, hudColor)
	}
}

// topDown projects the XZ plane onto the screen around a focus point. +Z is
// up and +X is left, matching the chase camera.
type topDown struct {
	screen *ebiten.Image
	focus  mgl64.Vec3
	cx, cy float64
	ppu    float64
}

func newTopDown(screen *ebiten.Image, focus mgl64.Vec3) topDown {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return topDown{
		screen: screen,
		focus:  focus,
		cx:     float64(w) / 2,
		cy:     float64(h) / 2,
		ppu:    cfg.Viewer.PixelsPerUnit,
	}
}

func (v topDown) project(p mgl64.Vec3) (float32, float32) {
	x := v.cx - (p.X()-v.focus.X())*v.ppu
	y := v.cy - (p.Z()-v.focus.Z())*v.ppu
	return float32(x), float32(y)
}

func (v topDown) rect(b gamemath.Box) (x, y, w, h float32) {
	x0, y0 := v.project(b.Max)
	x1, y1 := v.project(b.Min)
	return x0, y0, x1 - x0, y1 - y0
}

func (v topDown) fillBox(b gamemath.Box, clr color.Color) {
	x, y, w, h := v.rect(b)
	vector.FillRect(v.screen, x, y, w, h, clr, false)
}

func (v topDown) strokeBox(b gamemath.Box, clr color.Color) {
	x, y, w, h := v.rect(b)
	vector.StrokeRect(v.screen, x, y, w, h, 1, clr, false)
}

func (v topDown) line(a, b mgl64.Vec3, clr color.Color) {
	x0, y0 := v.project(a)
	x1, y1 := v.project(b)
	vector.StrokeLine(v.screen, x0, y0, x1, y1, 1, clr, false)
}

func (v topDown) marker(p mgl64.Vec3, size float32, clr color.Color) {
	x, y := v.project(p)
	vector.FillRect(v.screen, x-size/2, y-size/2, size, size, clr, false)
}
