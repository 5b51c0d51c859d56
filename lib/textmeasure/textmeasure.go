// Package textmeasure measures strings as they will be drawn in a given font.
//
// Shape renderers never measure text themselves; a Measurer is injected into the
// renderer so that tests can use exact, font-independent metrics.
package textmeasure

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/umlkit/umlkit/lib/geo"
)

const TAB_SIZE = 4

type FontFamily string

const (
	GoFamily   FontFamily = "Go"
	MonoFamily FontFamily = "Mono"
)

const (
	FONT_SIZE_S  = 10
	FONT_SIZE_M  = 12
	FONT_SIZE_L  = 16
	FONT_SIZE_XL = 20

	DEFAULT_FONT_SIZE = FONT_SIZE_M
)

// Font is the style text is measured and drawn with.
type Font struct {
	Family FontFamily `json:"family"`
	Size   int        `json:"size"`
	Bold   bool       `json:"bold,omitempty"`
}

func DefaultFont() Font {
	return Font{Family: GoFamily, Size: DEFAULT_FONT_SIZE}
}

func (f Font) WithBold(bold bool) Font {
	f.Bold = bold
	return f
}

// Measurer returns the dimension of s drawn in font. Lines are separated by '\n':
// the width is the widest line and the height grows with every line.
type Measurer interface {
	Measure(font Font, s string) (width, height float64)
}

// Dimension measures s with m.
func Dimension(m Measurer, font Font, s string) geo.Dimension {
	w, h := m.Measure(font, s)
	return geo.NewDimension(w, h)
}

// Lines splits s the way every Measurer does. Text is NFC normalized so that
// precomposed and decomposed accents measure the same, and tabs are expanded.
func Lines(s string) []string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", TAB_SIZE))
	return strings.Split(s, "\n")
}
