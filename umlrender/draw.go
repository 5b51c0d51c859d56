package umlrender

import (
	"fmt"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/svg"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlgraph"
)

// Painter draws the paths and text shape renderers produce. Paths are SVG path data.
type Painter interface {
	// StrokeAndFillPath outlines path and fills it. Sharp paths are drawn without antialiasing.
	StrokeAndFillPath(path, fill string, sharp bool)
	StrokePath(path string, dashed bool)
	// DrawText draws text, one line per '\n', in box.
	DrawText(text string, box geo.Rectangle, align label.Alignment, font textmeasure.Font)
}

// Draw paints every node, parents before children, then every edge.
func (r *Renderer) Draw(p Painter) {
	var visit func(n *umlgraph.Node)
	visit = func(n *umlgraph.Node) {
		r.DrawNode(p, n)
		for _, c := range n.Children() {
			visit(c)
		}
	}
	for _, n := range r.diagram.RootNodes() {
		visit(n)
	}
	for _, e := range r.diagram.Edges() {
		r.DrawEdge(p, e)
	}
}

// DrawNode paints n alone, not its children.
func (r *Renderer) DrawNode(p Painter, n *umlgraph.Node) {
	switch n.Kind() {
	case umlgraph.NoteNode:
		r.drawNote(p, n)
	case umlgraph.StateNode:
		r.drawState(p, n)
	case umlgraph.InitialStateNode:
		r.drawInitialState(p, n)
	case umlgraph.FinalStateNode:
		r.drawFinalState(p, n)
	case umlgraph.PointNode:
	case umlgraph.ClassNode:
		r.drawClass(p, n)
	case umlgraph.ImplicitParameterNode:
		r.drawLifeline(p, n)
	case umlgraph.CallNode:
		r.drawCall(p, n)
	default:
		panic(fmt.Sprintf("umlrender: no shape for %v", n.Kind()))
	}
}

func dashed(k umlgraph.EdgeKind) bool {
	switch k {
	case umlgraph.NoteEdge, umlgraph.DependencyEdge, umlgraph.ReturnEdge:
		return true
	case umlgraph.StateTransitionEdge, umlgraph.GeneralizationEdge, umlgraph.CallEdge:
		return false
	default:
		panic(fmt.Sprintf("umlrender: no line style for %v", k))
	}
}

func (r *Renderer) DrawEdge(p Painter, e *umlgraph.Edge) {
	l := r.ConnectionPoints(e)
	pc := svg.NewSVGPathContext(geo.Point{}, 1, 1)
	pc.StartAt(l.Point1)
	from := l.Point1
	if isSelfLoop(e) {
		pc.A(false, SELF_EDGE_OFFSET, SELF_EDGE_OFFSET, true, l.Point2.X, l.Point2.Y)
		// the arc comes back to the right side heading left
		from = l.Point2.Translate(SELF_EDGE_OFFSET, 0)
	} else {
		pc.L(false, l.Point2.X, l.Point2.Y)
	}
	p.StrokePath(pc.PathData(), dashed(e.Kind()))

	head := EndArrowhead(e.Kind())
	if pts := head.Points(from, l.Point2); len(pts) > 0 {
		pc = svg.NewSVGPathContext(geo.Point{}, 1, 1)
		pc.StartAt(pts[0])
		for _, pt := range pts[1:] {
			pc.L(false, pt.X, pt.Y)
		}
		switch head {
		case TriangleArrowhead:
			pc.Z()
			fill := color.White
			if e.Is(umlgraph.CallEdge) {
				fill = color.Black
			}
			p.StrokeAndFillPath(pc.PathData(), fill, false)
		case VArrowhead, NoArrowhead:
			p.StrokePath(pc.PathData(), false)
		}
	}

	for _, lbl := range r.Labels(e) {
		p.DrawText(lbl.Text, lbl.Box, label.Center, r.font)
	}
}

func (r *Renderer) drawText(p Painter, text string, region geo.Rectangle, align label.Alignment) {
	if text == "" {
		return
	}
	p.DrawText(text, r.textRect(text, r.font, region, align), align, r.font)
}
