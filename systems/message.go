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

var (
	messageFontFace font.Face
	promptFontFace  font.Face
)

// DrawMessage renders the current status line centered near the top of the
// screen, with the opacity the status system computed. Once the session is
// over it dims the scene and adds the restart prompt.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	statusEntry, ok := components.Status.First(e.World)
	if !ok {
		return
	}
	status := components.Status.Get(statusEntry)

	terminal := false
	if enc := GetEncounter(e); enc != nil && enc.Global.Terminal() {
		terminal = true
		vector.DrawFilledRect(screen, 0, 0,
			float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)
	}

	if status.MessageKey == cfg.MessageNone || status.MessageOpacity <= 0 {
		return
	}
	line, ok := cfg.Message.Texts[status.MessageKey]
	if !ok {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Title.Get()
	}
	if promptFontFace == nil {
		promptFontFace = fonts.Body.Get()
	}

	y := 60
	if terminal {
		y = cfg.C.Height/2 - 10
	}
	bounds := text.BoundString(messageFontFace, line) //nolint:staticcheck // TODO: migrate to text/v2
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, line, messageFontFace, x, y, fadeColor(cfg.White, status.MessageOpacity))

	if terminal {
		prompt := "Press R to restart"
		pb := text.BoundString(promptFontFace, prompt) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, prompt, promptFontFace, (cfg.C.Width-pb.Dx())/2, y+30,
			fadeColor(cfg.White, status.MessageOpacity))
	}
}
