package umlrender

import (
	"fmt"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/umlgraph"
)

const (
	// SELF_EDGE_OFFSET is how far from the top right corner a self edge attaches.
	SELF_EDGE_OFFSET = 15
	// PARALLEL_EDGE_OFFSET separates transitions between the same two nodes.
	PARALLEL_EDGE_OFFSET = 10
)

// ConnectionPoints returns where e touches its start and end node, in that order.
func (r *Renderer) ConnectionPoints(e *umlgraph.Edge) geo.Line {
	if !e.IsConnected() {
		panic(fmt.Sprintf("umlrender: %v is not connected", e))
	}
	switch e.Kind() {
	case umlgraph.StateTransitionEdge, umlgraph.NoteEdge, umlgraph.DependencyEdge, umlgraph.GeneralizationEdge:
		return r.straightConnectionPoints(e)
	case umlgraph.CallEdge:
		return r.callConnectionPoints(e)
	case umlgraph.ReturnEdge:
		return r.returnConnectionPoints(e)
	default:
		panic(fmt.Sprintf("umlrender: no shape for %v", e.Kind()))
	}
}

// straightConnectionPoints joins the boundaries of both nodes along the line
// between their centers. A self edge leaves from the top side and comes back on
// the right side.
//
//	         ╭─╮
//	┌────────┼─┐│
//	│        ▲ ├╯
//	│          │
//	└──────────┘
func (r *Renderer) straightConnectionPoints(e *umlgraph.Edge) geo.Line {
	start, end := e.Start(), e.End()
	if start == end {
		b := r.Bounds(start)
		return geo.NewLine(
			geo.NewPoint(b.MaxX()-SELF_EDGE_OFFSET, b.Y),
			geo.NewPoint(b.MaxX(), b.Y+SELF_EDGE_OFFSET),
		)
	}
	offset := r.parallelOffset(e)
	sc := r.Bounds(start).Center()
	ec := r.Bounds(end).Center()
	return geo.NewLine(
		r.connectionPoint(start, ec, offset),
		r.connectionPoint(end, sc, offset),
	)
}

// connectionPoint returns where the line from the center of n toward the point
// toward, shifted by offset, leaves n.
func (r *Renderer) connectionPoint(n *umlgraph.Node, toward geo.Point, offset geo.Direction) geo.Point {
	switch n.Kind() {
	case umlgraph.PointNode:
		return n.Position()
	case umlgraph.InitialStateNode, umlgraph.FinalStateNode:
		return geo.InscribedEllipse(r.intrinsicBounds(n)).BoundaryPointToward(toward)
	case umlgraph.ImplicitParameterNode:
		b := r.lifelineBounds(n)
		return geo.NewPoint(b.Center().X, geo.Clamp(toward.Y, b.Y, b.MaxY()))
	case umlgraph.StateNode, umlgraph.NoteNode, umlgraph.ClassNode, umlgraph.CallNode:
		return rectangleConnectionPoint(r.Bounds(n), toward, offset)
	default:
		panic(fmt.Sprintf("umlrender: no shape for %v", n.Kind()))
	}
}

func rectangleConnectionPoint(b geo.Rectangle, toward geo.Point, offset geo.Direction) geo.Point {
	if offset.IsZero() {
		return b.BoundaryPointToward(toward)
	}
	from := b.Center().Translate(offset.DX, offset.DY)
	if !b.Contains(from) {
		return b.BoundaryPointToward(toward)
	}
	to := toward.Translate(offset.DX, offset.DY)
	pts := b.Intersections(geo.NewSegment(from, to))
	if len(pts) == 0 {
		return b.BoundaryPointToward(toward)
	}
	return pts[0]
}

// parallelOffset spreads transitions joining the same two nodes: the first is
// shifted to one side of the line between the centers, the second to the other
// side, the third further out on the first side and so on.
func (r *Renderer) parallelOffset(e *umlgraph.Edge) geo.Direction {
	if !e.Is(umlgraph.StateTransitionEdge) || e.IsSelfEdge() {
		return geo.Direction{}
	}
	var siblings []*umlgraph.Edge
	index := -1
	for _, o := range r.diagram.Edges() {
		if !o.Is(umlgraph.StateTransitionEdge) {
			continue
		}
		if (o.Start() == e.Start() && o.End() == e.End()) || (o.Start() == e.End() && o.End() == e.Start()) {
			if o == e {
				index = len(siblings)
			}
			siblings = append(siblings, o)
		}
	}
	if index < 0 {
		index = len(siblings)
		siblings = append(siblings, e)
	}
	if len(siblings) < 2 {
		return geo.Direction{}
	}
	first := siblings[0]
	normal := r.Bounds(first.Start()).Center().VectorTo(r.Bounds(first.End()).Center()).Unit().Normal()
	magnitude := float64(PARALLEL_EDGE_OFFSET * (index/2 + 1))
	if index%2 == 1 {
		magnitude = -magnitude
	}
	return normal.Scale(magnitude)
}

// callConnectionPoints runs horizontally at the top of the callee, from the side
// of the caller facing it. Self calls join the right sides. A call ending on a
// lifeline constructs it and lands on the side of its header band.
func (r *Renderer) callConnectionPoints(e *umlgraph.Edge) geo.Line {
	start, end := e.Start(), e.End()
	sb := r.attachRect(start)
	var eb geo.Rectangle
	var y float64
	switch {
	case end.Is(umlgraph.ImplicitParameterNode):
		eb = r.TopRectangle(end)
		y = eb.Center().Y
	case end.Is(umlgraph.CallNode):
		eb = r.callBounds(end)
		y = eb.Y
	default:
		return r.straightConnectionPoints(e)
	}
	if sameLifeline(start, end) {
		return geo.NewLine(geo.NewPoint(sb.MaxX(), y), geo.NewPoint(eb.MaxX(), y))
	}
	return facing(sb, eb, y, y)
}

// returnConnectionPoints runs horizontally from the bottom of the callee back to
// the caller, clamped into the caller, or into the body when the caller is a
// lifeline.
func (r *Renderer) returnConnectionPoints(e *umlgraph.Edge) geo.Line {
	start, end := e.Start(), e.End()
	sb := r.attachRect(start)
	eb := r.attachRect(end)
	region := eb
	if end.Is(umlgraph.ImplicitParameterNode) {
		region = r.LifelineBody(end)
	}
	y := geo.Clamp(sb.MaxY(), region.Y, region.MaxY())
	if sameLifeline(start, end) {
		return geo.NewLine(geo.NewPoint(sb.MaxX(), y), geo.NewPoint(eb.MaxX(), y))
	}
	return facing(sb, eb, y, y)
}

// facing joins the sides of a and b that face each other, at heights ya and yb.
func facing(a, b geo.Rectangle, ya, yb float64) geo.Line {
	if b.Center().X >= a.Center().X {
		return geo.NewLine(geo.NewPoint(a.MaxX(), ya), geo.NewPoint(b.X, yb))
	}
	return geo.NewLine(geo.NewPoint(a.X, ya), geo.NewPoint(b.MaxX(), yb))
}

// selfLoop is the square the arc of a self edge is drawn in.
func selfLoop(l geo.Line) geo.Rectangle {
	return geo.NewRectangle(l.Point2.X-SELF_EDGE_OFFSET, l.Point1.Y-SELF_EDGE_OFFSET, 2*SELF_EDGE_OFFSET, 2*SELF_EDGE_OFFSET)
}

func isSelfLoop(e *umlgraph.Edge) bool {
	switch e.Kind() {
	case umlgraph.StateTransitionEdge, umlgraph.NoteEdge, umlgraph.DependencyEdge, umlgraph.GeneralizationEdge:
		return e.IsSelfEdge()
	case umlgraph.CallEdge, umlgraph.ReturnEdge:
		return false
	default:
		panic(fmt.Sprintf("umlrender: no shape for %v", e.Kind()))
	}
}

// Label is a piece of edge text and the box it is drawn in.
type Label struct {
	Text string        `json:"text"`
	Box  geo.Rectangle `json:"box"`
}

// Labels returns the start, middle and end labels of e that are not empty.
// The middle label is wrapped to the length of the edge.
func (r *Renderer) Labels(e *umlgraph.Edge) []Label {
	l := r.ConnectionPoints(e)
	var labels []Label
	place := func(text string, position label.Position) {
		if text == "" {
			return
		}
		d := r.textBox(text, r.font, label.None)
		var tl geo.Point
		if isSelfLoop(e) {
			loop := selfLoop(l)
			switch position {
			case label.OutsideTopLeft:
				tl = geo.NewPoint(l.Point1.X-d.Width-label.PADDING, l.Point1.Y-d.Height)
			case label.OutsideTopRight:
				tl = geo.NewPoint(l.Point2.X+label.PADDING, l.Point2.Y)
			default:
				tl = geo.NewPoint(loop.Center().X-d.Width/2, loop.Y-d.Height-label.PADDING)
			}
		} else {
			tl = position.GetPointOnLine(l, STROKE_WIDTH, d.Width, d.Height)
		}
		labels = append(labels, Label{Text: text, Box: geo.NewRectangleAt(tl, d)})
	}
	place(e.StartLabel(), label.OutsideTopLeft)
	if e.MiddleLabel() != "" {
		place(label.WrapString(r.measurer, r.font, e.MiddleLabel(), label.EdgeLabelWidth(l)), label.OutsideTopCenter)
	}
	place(e.EndLabel(), label.OutsideTopRight)
	return labels
}

func (r *Renderer) edgeBounds(e *umlgraph.Edge) geo.Rectangle {
	l := r.ConnectionPoints(e)
	b := l.Bounds()
	if isSelfLoop(e) {
		b = b.Union(selfLoop(l))
	}
	for _, lbl := range r.Labels(e) {
		b = b.Union(lbl.Box)
	}
	return b
}
