package textmeasure

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Ruler measures text with the Go fonts rendered by freetype.
//
//	ruler, err := textmeasure.NewRuler()
//	w, h := ruler.Measure(textmeasure.DefaultFont(), "hello")
//
// Font faces are created lazily per size and kept for the lifetime of the Ruler.
// A Ruler is not safe for concurrent use.
type Ruler struct {
	// LineHeightFactor scales the face's line height.
	LineHeightFactor float64

	ttfs  map[bool]*truetype.Font
	faces map[Font]font.Face
}

func NewRuler() (*Ruler, error) {
	r := &Ruler{
		LineHeightFactor: 1.,
		ttfs:             make(map[bool]*truetype.Font),
		faces:            make(map[Font]font.Face),
	}
	for bold, data := range map[bool][]byte{false: goregular.TTF, true: gobold.TTF} {
		ttf, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Go font: %w", err)
		}
		r.ttfs[bold] = ttf
	}
	return r, nil
}

func (r *Ruler) face(f Font) font.Face {
	key := Font{Size: f.Size, Bold: f.Bold}
	if face, ok := r.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(r.ttfs[f.Bold], &truetype.Options{
		Size:    float64(f.Size),
		Hinting: font.HintingFull,
	})
	r.faces[key] = face
	return face
}

// Measure returns the pixel dimension of s, rounded up to whole pixels.
// The font family is ignored: every family is measured with the Go fonts.
func (r *Ruler) Measure(f Font, s string) (width, height float64) {
	if f.Size <= 0 {
		f.Size = DEFAULT_FONT_SIZE
	}
	face := r.face(f)
	lines := Lines(s)
	for _, line := range lines {
		adv := font.MeasureString(face, line)
		width = math.Max(width, float64(adv)/64)
	}
	lineHeight := float64(face.Metrics().Height) / 64 * r.LineHeightFactor
	return math.Ceil(width), math.Ceil(lineHeight * float64(len(lines)))
}
