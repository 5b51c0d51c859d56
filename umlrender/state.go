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
	STATE_DEFAULT_WIDTH  = 80
	STATE_DEFAULT_HEIGHT = 60
	STATE_ARC_SIZE       = 20

	CIRCLE_DIAMETER = 20
	FINAL_GAP       = 3
)

func (r *Renderer) stateBounds(n *umlgraph.Node) geo.Rectangle {
	text := r.textBox(n.Name(), r.font, label.Padded)
	return geo.NewRectangleAt(n.Position(), geo.NewDimension(
		math.Max(text.Width, STATE_DEFAULT_WIDTH),
		math.Max(text.Height, STATE_DEFAULT_HEIGHT),
	))
}

func circleBounds(n *umlgraph.Node) geo.Rectangle {
	return geo.NewRectangleAt(n.Position(), geo.NewDimension(CIRCLE_DIAMETER, CIRCLE_DIAMETER))
}

// roundedRectangle returns the path of b with corners rounded by radius.
func roundedRectangle(b geo.Rectangle, radius float64) string {
	radius = math.Min(radius, math.Min(b.Width, b.Height)/2)
	pc := svg.NewSVGPathContext(b.TopLeft(), 1, 1)
	pc.StartAt(pc.Absolute(radius, 0))
	pc.H(false, b.Width-radius)
	pc.A(false, radius, radius, false, b.Width, radius)
	pc.V(false, b.Height-radius)
	pc.A(false, radius, radius, false, b.Width-radius, b.Height)
	pc.H(false, radius)
	pc.A(false, radius, radius, false, 0, b.Height-radius)
	pc.V(false, radius)
	pc.A(false, radius, radius, false, radius, 0)
	pc.Z()
	return pc.PathData()
}

// circle returns the path of the circle inscribed in b, as two half arcs.
func circle(b geo.Rectangle) string {
	rx, ry := b.Width/2, b.Height/2
	pc := svg.NewSVGPathContext(b.TopLeft(), 1, 1)
	pc.StartAt(pc.Absolute(0, ry))
	pc.A(false, rx, ry, false, b.Width, ry)
	pc.A(false, rx, ry, false, 0, ry)
	pc.Z()
	return pc.PathData()
}

func (r *Renderer) drawState(p Painter, n *umlgraph.Node) {
	b := r.intrinsicBounds(n)
	p.StrokeAndFillPath(roundedRectangle(b, STATE_ARC_SIZE), color.White, false)
	r.drawText(p, n.Name(), b, label.Center)
}

func (r *Renderer) drawInitialState(p Painter, n *umlgraph.Node) {
	p.StrokeAndFillPath(circle(r.intrinsicBounds(n)), color.Black, false)
}

func (r *Renderer) drawFinalState(p Painter, n *umlgraph.Node) {
	b := r.intrinsicBounds(n)
	p.StrokeAndFillPath(circle(b), color.White, false)
	inner := geo.NewRectangle(b.X+FINAL_GAP, b.Y+FINAL_GAP, b.Width-2*FINAL_GAP, b.Height-2*FINAL_GAP)
	p.StrokeAndFillPath(circle(inner), color.Black, false)
}
