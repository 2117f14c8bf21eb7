package ebiten_test

import (
	"math/rand/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrisboard/board"
	"github.com/plus3/tetrisboard/board/debugui"
	debugui_ebiten "github.com/plus3/tetrisboard/board/debugui/ebiten"
	"github.com/plus3/tetrisboard/piece"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Board Inspector", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	game := &debugui_ebiten.Game{
		Backend:   debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
		Board:     board.New(10, 20),
		Inspector: debugui.NewInspector("Board", 120),
		Step: func(b *board.Board) error {
			// Drop a random piece each tick and start over when the stack is full.
			p := piece.Standard(piece.Kind(rand.IntN(piece.NumKinds)))
			x := rand.IntN(b.Width() - p.Width() + 1)
			if result := b.Place(p, x, b.DropHeight(p, x)); !result.Ok() {
				b.Undo()
				b.Reset()
				return nil
			}
			b.ClearRows()
			b.Commit()
			return nil
		},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
