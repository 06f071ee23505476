package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Board layout: each cell takes three columns so the cursor brackets fit
// around the glyph.
const (
	cellW      = 3
	rowLabelW  = 4
	boardW     = rowLabelW + board.Size*cellW
	boardGap   = 6
	boardTop   = 2
	gridTop    = boardTop + 2
	minScreenW = 2*boardW + boardGap
	minScreenH = gridTop + board.Size + 6
)

var glyphs = map[board.CellState]struct {
	r rune
	c core.Color
}{
	board.Empty: {'·', core.ColorWater},
	board.Ship:  {'■', core.ColorShip},
	board.Hit:   {'×', core.ColorHit},
	board.Miss:  {'o', core.ColorMiss},
}

// Render draws both boards, the status line and the last message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	if !area.Contains(minScreenW-1, minScreenH-1) {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(0, g.Title(), core.ColorTitle)

	left := (dst.Width() - minScreenW) / 2
	right := left + boardW + boardGap
	s := g.state

	g.renderBoard(dst, left, "Your Fleet", &s.PlayerGrid, s.Focus == FocusPlayer)
	view := s.OpponentView()
	g.renderBoard(dst, right, "Opponent", &view, s.Focus == FocusOpponent)

	if s.Pending != nil {
		g.renderPreview(dst, left)
	}
	g.renderCursor(dst, left, right)

	y := gridTop + board.Size + 1
	y += drawWrapped(dst, left, y, g.Status(), " | ") - 1
	st := s.Stats()
	dst.DrawTextColored(left, y+1, fmt.Sprintf("Shots taken: %d  Hits: %d  Misses: %d  Sunk: %d/%d",
		st.Shots, st.Hits, st.Misses, st.Sunk, board.KindCount), core.ColorStatus)
	if g.message != "" {
		color := core.ColorStatus
		if g.isError {
			color = core.ColorError
		}
		dst.DrawTextColored(left, y+2, g.message, color)
	}
	if s.Phase == PhaseFinished {
		dst.DrawTextColored(left, y+3, "DEFEAT - every ship has been sunk", core.ColorHit)
	}
}

// renderTooSmall replaces the boards with a framed notice.
func (g *Game) renderTooSmall(dst *core.Screen) {
	const boxW, boxH = 22, 4
	mid := dst.Height() / 2
	dst.DrawBox(core.NewRect((dst.Width()-boxW)/2, mid-1, boxW, boxH), core.ColorLabel)
	dst.DrawTextCentered(mid, "Window too small", core.ColorError)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorStatus)
}

// renderBoard draws the labels and cells of one grid with its top-left corner at x.
func (g *Game) renderBoard(dst *core.Screen, x int, title string, grid *board.Grid, focused bool) {
	titleColor := core.ColorLabel
	if focused {
		titleColor = core.ColorTitle
		title = "> " + title + " <"
	}
	dst.DrawTextColored(x+rowLabelW, boardTop, title, titleColor)

	for col := range board.Size {
		dst.SetColored(cellX(x, col), gridTop-1, rune('A'+col), core.ColorLabel)
	}
	for row := range board.Size {
		dst.DrawTextColored(x, gridTop+row, fmt.Sprintf("%2d", row+1), core.ColorLabel)
		for col := range board.Size {
			gl := glyphs[grid.At(col, row)]
			dst.SetColored(cellX(x, col), gridTop+row, gl.r, gl.c)
		}
	}
}

// renderPreview overlays the pending ship on the player board,
// green when it fits and red when it does not.
func (g *Game) renderPreview(dst *core.Screen, x int) {
	s := g.state
	p := s.Pending
	color := core.ColorPreviewBad
	if s.CanPlacePending() {
		color = core.ColorPreviewOK
	}
	for _, c := range board.Footprint(p.Kind, s.Cursor.Col, s.Cursor.Row, p.Horizontal) {
		dst.SetColored(cellX(x, c.Col), gridTop+c.Row, '■', color)
	}
}

func (g *Game) renderCursor(dst *core.Screen, left, right int) {
	s := g.state
	x := left
	if s.Focus == FocusOpponent {
		x = right
	}
	cx := cellX(x, s.Cursor.Col)
	cy := gridTop + s.Cursor.Row
	dst.SetColored(cx-1, cy, '[', core.ColorCursor)
	dst.SetColored(cx+1, cy, ']', core.ColorCursor)
}

// drawWrapped writes text at (x, y), breaking at sep when it would run
// past the right edge. It returns the number of lines used.
func drawWrapped(dst *core.Screen, x, y int, text, sep string) int {
	limit := dst.Width() - x
	lines := 0
	for len([]rune(text)) > limit {
		cut := strings.LastIndex(string([]rune(text)[:limit]), sep)
		if cut <= 0 {
			break
		}
		dst.DrawText(x, y+lines, text[:cut])
		text = strings.TrimPrefix(text[cut:], sep)
		lines++
	}
	dst.DrawText(x, y+lines, text)
	return lines + 1
}

func cellX(boardX, col int) int {
	return boardX + rowLabelW + col*cellW
}
