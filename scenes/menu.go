package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/systems"
	"github.com/automoto/ronin/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for queued menu sounds
	ms.ecs.Update()

	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewDojoScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.menuUI = ui.NewMenuUI(func() {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		ms.shouldStart = true
	})
}
