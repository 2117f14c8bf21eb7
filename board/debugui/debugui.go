// Package debugui provides Dear ImGui windows for inspecting a board while a
// game or a simulation is running.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrisboard/board"
)

// Inspector renders a board's grid, its cached statistics and a rolling history
// of the stack height.
type Inspector struct {
	Title    string
	CellSize float32

	historyFrames int
	heightHistory []float32
	historyIndex  int
}

// NewInspector creates an inspector window that keeps the last historyFrames
// max-height samples.
func NewInspector(title string, historyFrames int) *Inspector {
	return &Inspector{
		Title:         title,
		CellSize:      14,
		historyFrames: historyFrames,
		heightHistory: make([]float32, historyFrames),
	}
}

var (
	filledColor  = imgui.NewVec4(0.2, 0.6, 0.8, 1.0)
	emptyColor   = imgui.NewVec4(0.15, 0.15, 0.15, 1.0)
	pendingColor = imgui.NewVec4(0.9, 0.6, 0.2, 1.0)
)

// Render draws the inspector window. Call it once per ImGui frame.
func (in *Inspector) Render(b *board.Board) {
	if !imgui.BeginV(in.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	st := b.Stats()
	in.heightHistory[in.historyIndex] = float32(st.MaxHeight)
	in.historyIndex = (in.historyIndex + 1) % in.historyFrames

	imgui.Text(fmt.Sprintf("Size: %dx%d", st.Width, st.Height))
	imgui.Text(fmt.Sprintf("Max Height: %d", st.MaxHeight))
	imgui.Text(fmt.Sprintf("Filled: %d  Full Rows: %d  Holes: %d", st.FilledCells, st.FullRows, st.Holes))
	if st.Pending {
		imgui.PushStyleColorVec4(imgui.ColText, pendingColor)
		imgui.Text("Pending (uncommitted)")
		imgui.PopStyleColor()
	} else {
		imgui.Text("Committed")
	}

	imgui.Separator()
	in.drawGrid(b)

	imgui.Separator()
	imgui.Text("Max Height History")
	imgui.PlotLinesFloatPtr("##maxheight", &in.heightHistory[0], int32(len(in.heightHistory)))

	if imgui.TreeNodeStr("Column Heights") {
		in.drawColumnTable(b)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Row Widths") {
		in.drawRowTable(b)
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) drawGrid(b *board.Board) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	filled := imgui.ColorU32Vec4(filledColor)
	empty := imgui.ColorU32Vec4(emptyColor)

	size := in.CellSize
	for y := 0; y < b.Height(); y++ {
		// Row 0 is at the bottom of the board but ImGui grows downward.
		top := origin.Y + float32(b.Height()-1-y)*size
		for x := 0; x < b.Width(); x++ {
			left := origin.X + float32(x)*size
			color := empty
			if b.Filled(x, y) {
				color = filled
			}
			drawList.AddRectFilled(
				imgui.NewVec2(left+1, top+1),
				imgui.NewVec2(left+size-1, top+size-1),
				color,
			)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(b.Width())*size, float32(b.Height())*size))
}

func (in *Inspector) drawColumnTable(b *board.Board) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ColumnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Column")
		imgui.TableSetupColumn("Height")
		imgui.TableHeadersRow()

		for x := 0; x < b.Width(); x++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", x))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", b.ColumnHeight(x)))
		}

		imgui.EndTable()
	}
}

func (in *Inspector) drawRowTable(b *board.Board) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("RowTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Width")
		imgui.TableHeadersRow()

		for y := b.MaxHeight() - 1; y >= 0; y-- {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", b.RowWidth(y), b.Width()))
		}

		imgui.EndTable()
	}
}
