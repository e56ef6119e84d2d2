package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title menu.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	// Widget references for updates
	flurryButton *widget.Button
	volumeButton *widget.Button
	boxesButton  *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI creates the title menu.
func NewMenuUI(onStart func()) *MenuUI {
	mui := &MenuUI{OnStart: onStart}
	mui.loadFonts()
	mui.buildUI()
	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("RONIN", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	mui.flurryButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(flurryLabel(), &mui.normalFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cfg.Debug.FlurryDefault = !cfg.Debug.FlurryDefault
			mui.flurryButton.Text().Label = flurryLabel()
			systems.SaveCurrentSettings()
		}),
	)
	contentContainer.AddChild(mui.flurryButton)

	mui.volumeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(volumeLabel(), &mui.normalFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			v := systems.GetSFXVolume() - 0.25
			if v < 0 {
				v = 1
			}
			systems.SetSFXVolume(v)
			mui.volumeButton.Text().Label = volumeLabel()
			systems.SaveCurrentSettings()
		}),
	)
	contentContainer.AddChild(mui.volumeButton)

	mui.boxesButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(boxesLabel(), &mui.normalFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
			mui.boxesButton.Text().Label = boxesLabel()
			systems.SaveCurrentSettings()
		}),
	)
	contentContainer.AddChild(mui.boxesButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update advances the ebitenui widget tree.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
	}
}

func (mui *MenuUI) buttonText() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{200, 200, 255, 255},
		Pressed: color.RGBA{150, 150, 200, 255},
	}
}

func flurryLabel() string {
	if cfg.Debug.FlurryDefault {
		return "Flurry: ON"
	}
	return "Flurry: OFF"
}

func volumeLabel() string {
	return fmt.Sprintf("SFX: %d%%", int(systems.GetSFXVolume()*100+0.5))
}

func boxesLabel() string {
	if cfg.Debug.ShowBoxes {
		return "Boxes: ON"
	}
	return "Boxes: OFF"
}
