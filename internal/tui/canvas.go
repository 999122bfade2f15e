package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

// cell is one terminal cell of the play area. The trailing half of a wide
// rune is stored with an empty string and zero width.
type cell struct {
	s     string
	width int
}

// canvas maps play-area units onto terminal cells: one column is one unit
// wide and one row is two units tall.
type canvas struct {
	cols  int
	rows  int
	cells [][]cell
}

var blankCell = cell{s: " ", width: 1}

func newCanvas(cols, rows int) *canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	cells := make([][]cell, rows)
	for y := range cells {
		cells[y] = make([]cell, cols)
		for x := range cells[y] {
			cells[y][x] = blankCell
		}
	}
	return &canvas{cols: cols, rows: rows, cells: cells}
}

// cellPoint returns the play-area point at the centre of a cell.
func cellPoint(col, row int) model.Point {
	return model.Point{X: float64(col) + 0.5, Y: float64(row)*2 + 1}
}

// pointCell returns the cell containing p.
func pointCell(p model.Point) (col, row int) {
	return int(p.X), int(p.Y / 2)
}

func (c *canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

func (c *canvas) set(col, row int, r rune, style lipgloss.Style) {
	w := runewidth.RuneWidth(r)
	if w == 0 || !c.inside(col, row) || !c.inside(col+w-1, row) {
		return
	}
	c.cells[row][col] = cell{s: style.Render(string(r)), width: w}
	for i := 1; i < w; i++ {
		c.cells[row][col+i] = cell{}
	}
}

// label writes text starting at col, clipped to the canvas width.
func (c *canvas) label(col, row int, text string, style lipgloss.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.cols {
			return
		}
		c.set(col, row, r, style)
		col += w
	}
}

// centerLabel writes text horizontally centred on row.
func (c *canvas) centerLabel(row int, text string, style lipgloss.Style) {
	col := max((c.cols-runewidth.StringWidth(text))/2, 0)
	c.label(col, row, text, style)
}

// fillCircle paints every cell whose centre lies within radius of center.
func (c *canvas) fillCircle(center model.Point, radius float64, r rune, style lipgloss.Style) {
	minCol, minRow := pointCell(model.Point{X: center.X - radius, Y: center.Y - radius})
	maxCol, maxRow := pointCell(model.Point{X: center.X + radius, Y: center.Y + radius})
	for row := max(minRow, 0); row <= min(maxRow, c.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, c.cols-1); col++ {
			if cellPoint(col, row).Dist(center) <= radius {
				c.set(col, row, r, style)
			}
		}
	}
}

func (c *canvas) render() string {
	lines := make([]string, c.rows)
	var b strings.Builder
	for y, row := range c.cells {
		b.Reset()
		for _, item := range row {
			b.WriteString(item.s)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
