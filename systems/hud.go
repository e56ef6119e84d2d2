package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var hudFontFace font.Face

// DrawHUD renders the player's health bar top-left and, while an opponent is
// engaged, its bar top-right with its name.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	statusEntry, ok := components.Status.First(e.World)
	if !ok {
		return
	}
	status := components.Status.Get(statusEntry)

	drawBar(screen, hudMargin, status.PlayerHealthFrac)

	encounter := GetEncounter(e)
	if encounter == nil || encounter.ActiveOpponent == nil || !encounter.ActiveOpponent.Valid() {
		return
	}

	rightX := float32(cfg.C.Width - hudMargin - hudBarWidth)
	drawBar(screen, rightX, status.OpponentHealthFrac)

	if hudFontFace == nil {
		hudFontFace = fonts.Small.Get()
	}
	name := components.Fighter.Get(encounter.ActiveOpponent).Name
	text.Draw(screen, name, hudFontFace, int(rightX), hudMargin+hudBarHeight+14, cfg.White)
}

func drawBar(screen *ebiten.Image, x float32, frac float64) {
	vector.DrawFilledRect(screen,
		x, float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.BarBack, false)
	vector.DrawFilledRect(screen,
		x, float32(hudMargin),
		float32(hudBarWidth)*float32(frac), float32(hudBarHeight),
		cfg.Green, false)
}
