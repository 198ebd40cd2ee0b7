package screen

import (
	"github.com/Rangchakdv/MazeSolver/internal/presentation/tui"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/gdamore/tcell/v2"
)

const keyHelp = "o/s/g/e mode  click paint  space solve  r reset  x random  +/- size  : resize  q quit"

var textStyle = tcell.StyleDefault.Foreground(tcell.ColorReset).Background(tcell.ColorReset)

// Draw renders the maze, the revealed path and the status lines, then shows the screen.
func (e *Editor) Draw() {
	e.screen.Clear()

	g := e.state.Grid
	revealed := make(map[domain.Position]bool)
	for _, p := range e.player.Revealed() {
		revealed[p] = true
	}

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := domain.Pos(r, c)
			cell := g.At(p)
			color := tcell.GetColor(tui.CellColor(cell, revealed[p] && cell == domain.Empty))
			style := tcell.StyleDefault.Background(color)
			for i := 0; i < cellWidth; i++ {
				e.screen.SetContent(c*cellWidth+i, r, ' ', nil, style)
			}
		}
	}

	y := g.Height() + 1
	e.putString(0, y, tui.Status(e.state.Snapshot()))
	if e.message != "" {
		e.putString(0, y+1, e.message)
	}
	if e.input == InputCommand {
		e.putString(0, y+2, "resize (W H): "+string(e.commandBuffer))
		e.screen.ShowCursor(len("resize (W H): ")+len(e.commandBuffer), y+2)
	} else {
		e.screen.HideCursor()
		e.putString(0, y+2, keyHelp)
	}

	e.screen.Show()
}

func (e *Editor) putString(x, y int, s string) {
	for i, r := range []rune(s) {
		e.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
