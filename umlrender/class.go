package umlrender

import (
	"math"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/svg"
	"github.com/umlkit/umlkit/umlgraph"
)

const (
	CLASS_DEFAULT_WIDTH  = 100
	CLASS_DEFAULT_HEIGHT = 60
)

// Class names are bold.
func (r *Renderer) classBounds(n *umlgraph.Node) geo.Rectangle {
	text := r.textBox(n.Name(), r.font.WithBold(true), label.Padded)
	return geo.NewRectangleAt(n.Position(), geo.NewDimension(
		math.Max(text.Width, CLASS_DEFAULT_WIDTH),
		math.Max(text.Height, CLASS_DEFAULT_HEIGHT),
	))
}

func rectangle(b geo.Rectangle) string {
	pc := svg.NewSVGPathContext(b.TopLeft(), 1, 1)
	pc.StartAt(pc.Absolute(0, 0))
	pc.H(false, b.Width)
	pc.V(false, b.Height)
	pc.H(false, 0)
	pc.Z()
	return pc.PathData()
}

func (r *Renderer) drawClass(p Painter, n *umlgraph.Node) {
	b := r.intrinsicBounds(n)
	p.StrokeAndFillPath(rectangle(b), color.White, true)
	font := r.font.WithBold(true)
	p.DrawText(n.Name(), r.textRect(n.Name(), font, b, label.TopCenter), label.TopCenter, font)
}
