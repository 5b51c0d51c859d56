package label

import (
	"math"
	"strings"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/textmeasure"
)

const (
	// EDGE_LABEL_MARGIN is kept free at both ends of an edge when sizing its label.
	EDGE_LABEL_MARGIN = 10
	// MIN_EDGE_LABEL_WIDTH keeps labels of short edges readable.
	MIN_EDGE_LABEL_WIDTH = 60
)

// EdgeLabelWidth is the width available to the label of an edge drawn along l.
func EdgeLabelWidth(l geo.Line) float64 {
	return math.Max(l.Length()-2*EDGE_LABEL_MARGIN, MIN_EDGE_LABEL_WIDTH)
}

// Wrap breaks text into lines no wider than width, greedily: each line takes as
// many words as fit. A word wider than width gets a line of its own. Existing
// line breaks are kept. The result always has at least one line, and narrowing
// width never reduces the number of lines.
func Wrap(m textmeasure.Measurer, font textmeasure.Font, text string, width float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, font, paragraph, width)...)
	}
	return lines
}

func wrapParagraph(m textmeasure.Measurer, font textmeasure.Font, paragraph string, width float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if cw, _ := m.Measure(font, candidate); cw <= width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// WrapString is Wrap joined back with newlines.
func WrapString(m textmeasure.Measurer, font textmeasure.Font, text string, width float64) string {
	return strings.Join(Wrap(m, font, text, width), "\n")
}
