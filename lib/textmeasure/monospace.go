package textmeasure

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Monospace measures text on a fixed grid: every terminal cell is CellWidth wide
// and every line LineHeight tall, regardless of font. Wide runes (CJK, emoji)
// take two cells.
type Monospace struct {
	CellWidth  float64
	LineHeight float64
}

func NewMonospace(cellWidth, lineHeight float64) Monospace {
	return Monospace{CellWidth: cellWidth, LineHeight: lineHeight}
}

// Cells returns the number of terminal cells line occupies.
func Cells(line string) int {
	cells := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cells += runewidth.StringWidth(gr.Str())
	}
	return cells
}

func (m Monospace) Measure(_ Font, s string) (width, height float64) {
	lines := Lines(s)
	for _, line := range lines {
		width = math.Max(width, float64(Cells(line))*m.CellWidth)
	}
	return width, float64(len(lines)) * m.LineHeight
}
