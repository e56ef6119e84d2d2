package main

import (
	"log"

	"github.com/automoto/ronin/assets"
	"github.com/automoto/ronin/config"
	"github.com/automoto/ronin/fonts"
	"github.com/automoto/ronin/scenes"
	"github.com/automoto/ronin/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Body, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 22)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)

	if err := config.ApplyTuning(assets.TuningYAML); err != nil {
		log.Printf("Warning: tuning overrides not applied: %v", err)
	}

	if err := systems.InitPersistence(); err == nil {
		saved, _ := systems.LoadSettings()
		systems.ApplySavedSettings(saved)
	}

	g := &Game{}
	if config.Debug.SkipMenu {
		g.scene = scenes.NewDojoScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Ronin")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
