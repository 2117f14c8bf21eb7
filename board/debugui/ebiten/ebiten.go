// Package ebiten runs board inspectors on top of the Ebiten game engine through
// the Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrisboard/board"
	"github.com/plus3/tetrisboard/board/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game for a single board. Step, when set, is called once
// per tick before the inspector is drawn and may mutate the board.
type Game struct {
	Backend   ImguiBackend
	Board     *board.Board
	Inspector *debugui.Inspector
	Step      func(b *board.Board) error
}

func (g *Game) Update() error {
	g.Backend.BeginFrame()
	defer g.Backend.EndFrame()

	if g.Step != nil {
		if err := g.Step(g.Board); err != nil {
			return err
		}
	}

	g.Inspector.Render(g.Board)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
