package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// textTable lays out plain-text rows under a header line. Cells are padded
// to the widest entry of their column in terminal cells.
type textTable struct {
	titles []string
	right  []bool
	rows   [][]string
}

func newTextTable(titles ...string) *textTable {
	return &textTable{titles: titles, right: make([]bool, len(titles))}
}

// alignRight right-aligns the given columns.
func (t *textTable) alignRight(cols ...int) *textTable {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

func (t *textTable) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// lines renders the header and every row. Missing cells are blank and cells
// past the last title are dropped.
func (t *textTable) lines() []string {
	widths := make([]int, len(t.titles))
	for i, title := range t.titles {
		widths[i] = runewidth.StringWidth(title)
	}
	for _, row := range t.rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	out := make([]string, 0, len(t.rows)+1)
	out = append(out, t.line(t.titles, widths))
	for _, row := range t.rows {
		out = append(out, t.line(row, widths))
	}
	return out
}

func (t *textTable) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if t.right[i] {
			parts[i] = runewidth.FillLeft(cell, w)
		} else {
			parts[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.Join(parts, " ")
}

func (t *textTable) write(w io.Writer) error {
	for _, line := range t.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
