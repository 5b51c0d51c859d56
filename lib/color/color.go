package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Black = "#000000"
	White = "#ffffff"

	// Special
	Empty = ""
	None  = "none"
)

// NoteFill is the pale yellow notes are filled with.
var NoteFill = colorful.Color{R: 0.9, G: 0.9, B: 0.6}.Hex()

// Validate reports whether colorString is a CSS color.
func Validate(colorString string) error {
	if colorString == None {
		return nil
	}
	_, err := csscolorparser.Parse(colorString)
	return err
}

// Normalize returns colorString as a lowercase #rrggbb hex string.
func Normalize(colorString string) (string, error) {
	if colorString == None {
		return None, nil
	}
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}
