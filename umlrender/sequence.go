package umlrender

import (
	"fmt"
	"math"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/svg"
	"github.com/umlkit/umlkit/umlgraph"
)

const (
	LIFELINE_TOP_WIDTH      = 80
	LIFELINE_TOP_HEIGHT     = 60
	LIFELINE_DEFAULT_HEIGHT = 120
	// LIFELINE_TAIL extends a lifeline below its last call.
	LIFELINE_TAIL = 20

	CALL_WIDTH  = 16
	CALL_HEIGHT = 30
	// CALL_YGAP separates the top of a call from the top of its first callee,
	// and the bottom of its last callee from its own bottom.
	CALL_YGAP = 20
	// CALL_SPACING separates a call from the header band above it and from the
	// previous call of the same caller.
	CALL_SPACING = 10
)

//	┌──────────────┐ ┬
//	│    object    │ │ top rectangle (header band)
//	└──────┬───────┘ ┴
//	       ┆         ┬
//	      ┌┴┐        │
//	      │ │ call   │ body
//	      └┬┘        │
//	       ┆         ┴

func (r *Renderer) requireSequence(n *umlgraph.Node, kind umlgraph.NodeKind) {
	if r.diagram.Type() != umlgraph.Sequence {
		panic(fmt.Sprintf("umlrender: sequence query on a %v", r.diagram.Type()))
	}
	if !n.Is(kind) {
		panic(fmt.Sprintf("umlrender: sequence query expects a %v, got %v", kind, n))
	}
}

// TopRectangle returns the header band of the lifeline n, sized to its name.
func (r *Renderer) TopRectangle(n *umlgraph.Node) geo.Rectangle {
	r.requireSequence(n, umlgraph.ImplicitParameterNode)
	text := r.textBox(n.Name(), r.font, label.Padded)
	return geo.NewRectangleAt(n.Position(), geo.NewDimension(
		math.Max(text.Width, LIFELINE_TOP_WIDTH),
		math.Max(text.Height, LIFELINE_TOP_HEIGHT),
	))
}

// TopRectangleContains reports whether p falls within the header band of the lifeline n.
func (r *Renderer) TopRectangleContains(n *umlgraph.Node, p geo.Point) bool {
	return r.TopRectangle(n).Contains(p)
}

// LifelineBody returns the part of the lifeline n below its header band.
func (r *Renderer) LifelineBody(n *umlgraph.Node) geo.Rectangle {
	top := r.TopRectangle(n)
	b := r.lifelineBounds(n)
	return geo.NewRectangle(top.X, top.MaxY(), top.Width, b.MaxY()-top.MaxY())
}

func (r *Renderer) lifelineBounds(n *umlgraph.Node) geo.Rectangle {
	top := r.TopRectangle(n)
	bottom := top.Y + LIFELINE_DEFAULT_HEIGHT
	for _, c := range n.Children() {
		if c.Is(umlgraph.CallNode) {
			bottom = math.Max(bottom, r.callBottom(c)+LIFELINE_TAIL)
		}
	}
	return geo.NewRectangle(top.X, top.Y, top.Width, bottom-top.Y)
}

// Caller returns the call node whose call edge ends on n, nil when n was not
// called from a call node.
func (r *Renderer) Caller(n *umlgraph.Node) *umlgraph.Node {
	r.requireSequence(n, umlgraph.CallNode)
	for _, e := range r.diagram.EdgesConnectedTo(n) {
		if e.Is(umlgraph.CallEdge) && e.End() == n && e.Start().Is(umlgraph.CallNode) {
			return e.Start()
		}
	}
	return nil
}

// Callees returns the call nodes n calls, in the order the calls were added.
func (r *Renderer) Callees(n *umlgraph.Node) []*umlgraph.Node {
	r.requireSequence(n, umlgraph.CallNode)
	var callees []*umlgraph.Node
	for _, e := range r.diagram.EdgesConnectedTo(n) {
		if e.Is(umlgraph.CallEdge) && e.Start() == n && e.End().Is(umlgraph.CallNode) {
			callees = append(callees, e.End())
		}
	}
	return callees
}

// HasEntryPoint reports whether some call node in the diagram has no caller,
// meaning an interaction was already started.
func (r *Renderer) HasEntryPoint() bool {
	if r.diagram.Type() != umlgraph.Sequence {
		panic(fmt.Sprintf("umlrender: sequence query on a %v", r.diagram.Type()))
	}
	for _, n := range r.diagram.Nodes() {
		if n.Is(umlgraph.CallNode) && r.Caller(n) == nil {
			return true
		}
	}
	return false
}

// NestingDepth counts the calls still active on the lifeline of n when n is called.
func (r *Renderer) NestingDepth(n *umlgraph.Node) int {
	depth := 0
	for c := r.Caller(n); c != nil; c = r.Caller(c) {
		if c.Parent() == n.Parent() {
			depth++
		}
	}
	return depth
}

// callBounds places n on the center line of its lifeline, shifted right by
// half a call width per nesting level.
func (r *Renderer) callBounds(n *umlgraph.Node) geo.Rectangle {
	lifeline := n.Parent()
	if lifeline == nil {
		panic(fmt.Sprintf("umlrender: %v is not on a lifeline", n))
	}
	centerX := r.TopRectangle(lifeline).Center().X
	x := centerX - CALL_WIDTH/2 + float64(r.NestingDepth(n))*CALL_WIDTH/2
	y := r.callY(n)
	return geo.NewRectangle(x, y, CALL_WIDTH, r.callHeight(n, y))
}

// callY is the top of n: never above its own position, the header band of its
// lifeline, its caller's top or the bottom of the previous call of its caller.
func (r *Renderer) callY(n *umlgraph.Node) float64 {
	y := n.Position().Y
	if lifeline := n.Parent(); lifeline != nil {
		y = math.Max(y, r.TopRectangle(lifeline).MaxY()+CALL_SPACING)
	}
	caller := r.Caller(n)
	if caller == nil {
		return y
	}
	y = math.Max(y, r.callY(caller)+CALL_YGAP)
	var prev *umlgraph.Node
	for _, c := range r.Callees(caller) {
		if c == n {
			break
		}
		prev = c
	}
	if prev != nil {
		y = math.Max(y, r.callBottom(prev)+CALL_SPACING)
	}
	return y
}

func (r *Renderer) callHeight(n *umlgraph.Node, y float64) float64 {
	h := float64(CALL_HEIGHT)
	for _, c := range r.Callees(n) {
		h = math.Max(h, r.callBottom(c)+CALL_YGAP-y)
	}
	return h
}

func (r *Renderer) callBottom(n *umlgraph.Node) float64 {
	y := r.callY(n)
	return y + r.callHeight(n, y)
}

// lifelineOf returns the lifeline n is, or is on.
func lifelineOf(n *umlgraph.Node) *umlgraph.Node {
	if n.Is(umlgraph.ImplicitParameterNode) {
		return n
	}
	return n.Parent()
}

func sameLifeline(a, b *umlgraph.Node) bool {
	la := lifelineOf(a)
	return la != nil && la == lifelineOf(b)
}

// attachRect is the rectangle sequence edges attach to: the center line for a
// lifeline, the bounds otherwise.
func (r *Renderer) attachRect(n *umlgraph.Node) geo.Rectangle {
	if n.Is(umlgraph.ImplicitParameterNode) {
		b := r.lifelineBounds(n)
		return geo.NewRectangle(b.Center().X, b.Y, 0, b.Height)
	}
	return r.Bounds(n)
}

func (r *Renderer) drawLifeline(p Painter, n *umlgraph.Node) {
	top := r.TopRectangle(n)
	b := r.lifelineBounds(n)
	p.StrokeAndFillPath(rectangle(top), color.White, true)
	r.drawText(p, n.Name(), top, label.Center)

	pc := svg.NewSVGPathContext(geo.Point{}, 1, 1)
	pc.StartAt(geo.NewPoint(top.Center().X, top.MaxY()))
	pc.V(false, b.MaxY())
	p.StrokePath(pc.PathData(), true)
}

func (r *Renderer) drawCall(p Painter, n *umlgraph.Node) {
	p.StrokeAndFillPath(rectangle(r.callBounds(n)), color.White, true)
}
