package label

import (
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/textmeasure"
)

// TEXT_PADDING surrounds padded text on every side.
const TEXT_PADDING = 7

type Decoration int

const (
	None Decoration = iota
	Padded
)

type Alignment int

const (
	TopLeft Alignment = iota
	TopCenter
	Center
)

// Box returns the space needed to draw text, padding included when decorated.
// Empty text takes no space.
func Box(m textmeasure.Measurer, font textmeasure.Font, text string, decoration Decoration) geo.Dimension {
	if text == "" {
		return geo.Dimension{}
	}
	d := textmeasure.Dimension(m, font, text)
	if decoration == Padded {
		d.Width += 2 * TEXT_PADDING
		d.Height += 2 * TEXT_PADDING
	}
	return d
}

// Place returns the top left point at which a text box of dimension d is drawn
// inside bounds with the given alignment.
func Place(bounds geo.Rectangle, d geo.Dimension, align Alignment) geo.Point {
	switch align {
	case TopCenter:
		return geo.NewPoint(bounds.X+(bounds.Width-d.Width)/2, bounds.Y)
	case Center:
		return geo.NewPoint(bounds.X+(bounds.Width-d.Width)/2, bounds.Y+(bounds.Height-d.Height)/2)
	default:
		return bounds.TopLeft()
	}
}
