package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	axisLabelWidth      = 6
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

var colorPalette = []string{
	"\x1b[32m", // green
	"\x1b[33m", // yellow
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
}

// PlotSeries renders a braille line plot sharing one value axis.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, false)
}

// PlotSeriesWithColor renders a braille line plot with optional forced color.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	series = filterSeries(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	width = max(width, minPlotWidth)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}

	dotRows := height * 4
	grids := make([][][]uint8, len(series))
	for si, s := range series {
		grids[si] = makeCells(height, width)
		points := resampleSeries(s.Values, width)
		prevX, prevY := -1, -1
		for x, v := range points {
			y := valueToRow(v, lo, hi, dotRows)
			px := x * 2
			if prevX >= 0 {
				drawLine(prevX, prevY, px, y, func(dx, dy int) {
					if si == 0 || dx%4 < 2 {
						setBrailleDot(grids[si], dx, dy)
					}
				})
			} else {
				setBrailleDot(grids[si], px, y)
			}
			prevX, prevY = px, y
		}
	}

	useColor := shouldUseColor(w, forceColor)
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		label := ""
		switch y {
		case 0:
			label = fmt.Sprintf("%.0f", hi)
		case height - 1:
			label = fmt.Sprintf("%.0f", lo)
		}
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", axisLabelWidth, label, axisSeparator))
		for x := 0; x < width; x++ {
			mask, owner := composeCell(grids, x, y)
			ch := rune(0x2800 + int(mask))
			if useColor && owner >= 0 {
				row.WriteString(colorPalette[owner%len(colorPalette)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
				continue
			}
			row.WriteRune(ch)
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, renderLegend(series, useColor)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	axisWidth := axisLabelWidth + utf8.RuneCountInString(axisSeparator)
	return max(totalWidth-axisWidth, minPlotWidth)
}

func filterSeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return cells
}

// composeCell merges every series' dots; the first series present owns the color.
func composeCell(grids [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, cells := range grids {
		m := cells[y][x]
		if m == 0 {
			continue
		}
		if owner < 0 {
			owner = i
		}
		mask |= m
	}
	return mask, owner
}

// resampleSeries averages buckets when shrinking and interpolates when growing.
func resampleSeries(values []float64, width int) []float64 {
	n := len(values)
	out := make([]float64, width)
	switch {
	case n == 0 || width <= 0:
		return nil
	case n == 1:
		for i := range out {
			out[i] = values[0]
		}
	case n >= width:
		for i := 0; i < width; i++ {
			start := i * n / width
			end := max((i+1)*n/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	default:
		for i := 0; i < width; i++ {
			pos := float64(i) * float64(n-1) / float64(max(width-1, 1))
			idx := min(int(pos), n-2)
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func valueToRow(v, lo, hi float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	return max(0, min(rows-1, row))
}

func renderLegend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		style := "solid"
		if i > 0 {
			style = "dashed"
		}
		label := fmt.Sprintf("%c %s (%s)", rune(0x2801), s.Name, style)
		if useColor {
			label = colorPalette[i%len(colorPalette)] + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

// drawLine walks a Bresenham line between two dot coordinates.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Braille dot bits indexed by [row][column] inside a 2x4 cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cy, cx := y/4, x/2
	if cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= brailleBits[y%4][x%2]
}
