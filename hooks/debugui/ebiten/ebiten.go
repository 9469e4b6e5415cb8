// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hooklist/hooks"
	"github.com/plus3/hooklist/hooks/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game. Each Update renders the flagged scopes of the
// runtime, then draws the inspector panel for the new state.
type Game struct {
	Runtime *hooks.Runtime
	Panel   *debugui.Panel
	Backend ImguiBackend
	// OnError receives errors returned by Runtime.Once. Errors are ignored when nil.
	OnError func(error)

	timer *debugui.FrameTimer
}

// NewGame creates a game driving rt with the given backend.
func NewGame(rt *hooks.Runtime, backend *ebitenbackend.EbitenBackend) *Game {
	return &Game{
		Runtime: rt,
		Panel:   debugui.NewPanel(120),
		Backend: ImguiBackend{EbitenBackend: backend},
		timer:   debugui.NewFrameTimer(),
	}
}

func (g *Game) Update() error {
	if err := g.Runtime.Once(); err != nil && g.OnError != nil {
		g.OnError(err)
	}

	g.Backend.BeginFrame()
	g.Panel.Render(g.Runtime, g.timer.DeltaTime())
	g.Backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
