package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseUI is the viewer's pause panel. It shows the live tuning and offers
// a few scene actions.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume        func()
	OnToggleTerrain func()
	OnShiftBuilding func()

	tuningLabel *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewPauseUI(onResume, onToggleTerrain, onShiftBuilding func()) *PauseUI {
	pui := &PauseUI{
		OnResume:        onResume,
		OnToggleTerrain: onToggleTerrain,
		OnShiftBuilding: onShiftBuilding,
		titleFace:       fonts.Title.TextFace(),
		normalFace:      fonts.Regular.TextFace(),
		smallFace:       fonts.Small.TextFace(),
	}
	pui.buildUI()
	return pui
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	pui.tuningLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(pui.tuningLabel)

	contentContainer.AddChild(pui.button("Resume", pui.OnResume))
	contentContainer.AddChild(pui.button("Toggle terrain", pui.OnToggleTerrain))
	contentContainer.AddChild(pui.button("Shift shed", pui.OnShiftBuilding))

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(pui.statusLabel)

	rootContainer.AddChild(contentContainer)
	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 22),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// SetTuning refreshes the tuning summary.
func (pui *PauseUI) SetTuning(t config.Tuning) {
	pui.tuningLabel.Label = fmt.Sprintf("speed %.2f  turn %.2f  jump %.1f  gravity %.1f",
		t.Character.MoveSpeed, t.Character.RotateSpeed, t.Physics.JumpForce, t.Physics.Gravity)
}

func (pui *PauseUI) SetStatus(status string) {
	pui.statusLabel.Label = status
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}
