// Package umlbuilder mutates diagrams through the validation rules of their type.
//
// A Builder is bound to one diagram and the renderer of that diagram for its whole life.
// Edges are only ever added when every constraint of the diagram type permits them, and
// a rejected edge leaves the diagram exactly as it was.
package umlbuilder

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/log"
	"github.com/umlkit/umlkit/umlconstraints"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlrender"
)

var _ umlconstraints.Renderer = (*umlrender.Renderer)(nil)

// KIND_NOT_ALLOWED is reported by Check for edges whose kind the diagram type does not have.
const KIND_NOT_ALLOWED = "edge_kind"

// EDGE_TOLERANCE is how far from the line between its connection points an edge
// still counts as hit.
const EDGE_TOLERANCE = 3

type Builder struct {
	diagram     *umlgraph.Diagram
	renderer    *umlrender.Renderer
	constraints umlconstraints.Set
}

// New returns a builder validating with the constraints of d's type.
// r must render d.
func New(d *umlgraph.Diagram, r *umlrender.Renderer) *Builder {
	if r.Diagram() != d {
		panic("umlbuilder: renderer does not render the builder's diagram")
	}
	return &Builder{
		diagram:     d,
		renderer:    r,
		constraints: umlconstraints.ForType(d.Type()),
	}
}

func NewState(d *umlgraph.Diagram, r *umlrender.Renderer) *Builder {
	requireType(d, umlgraph.State)
	return New(d, r)
}

func NewSequence(d *umlgraph.Diagram, r *umlrender.Renderer) *Builder {
	requireType(d, umlgraph.Sequence)
	return New(d, r)
}

func NewClass(d *umlgraph.Diagram, r *umlrender.Renderer) *Builder {
	requireType(d, umlgraph.Class)
	return New(d, r)
}

func requireType(d *umlgraph.Diagram, t umlgraph.Type) {
	if d.Type() != t {
		panic(fmt.Sprintf("umlbuilder: expected a %v, got a %v", t, d.Type()))
	}
}

func (b *Builder) Diagram() *umlgraph.Diagram {
	return b.diagram
}

func (b *Builder) Constraints() umlconstraints.Set {
	return b.constraints
}

// CanAdd reports whether edge may connect start to end, the points being where
// the edge was drawn from and to.
func (b *Builder) CanAdd(edge *umlgraph.Edge, start, end *umlgraph.Node, startPoint, endPoint geo.Point) bool {
	b.requireCandidate(edge, start, end)
	return b.diagram.Type().AllowsEdge(edge.Kind()) &&
		b.constraints.Permits(b.candidate(edge, start, end, startPoint, endPoint), b.renderer)
}

// Check is CanAdd that also names the rule rejecting the edge and logs it.
func (b *Builder) Check(ctx context.Context, edge *umlgraph.Edge, start, end *umlgraph.Node, startPoint, endPoint geo.Point) (rejectedBy string, ok bool) {
	b.requireCandidate(edge, start, end)
	if !b.diagram.Type().AllowsEdge(edge.Kind()) {
		log.Debug(ctx, "edge kind not allowed",
			slog.F("edge", edge.Kind().String()),
			slog.F("diagram", b.diagram.Type().String()),
		)
		return KIND_NOT_ALLOWED, false
	}
	return b.constraints.Explain(ctx, b.candidate(edge, start, end, startPoint, endPoint), b.renderer)
}

func (b *Builder) candidate(edge *umlgraph.Edge, start, end *umlgraph.Node, startPoint, endPoint geo.Point) umlconstraints.Candidate {
	return umlconstraints.Candidate{
		Edge:       edge,
		Start:      start,
		End:        end,
		StartPoint: startPoint,
		EndPoint:   endPoint,
	}
}

func (b *Builder) requireCandidate(edge *umlgraph.Edge, start, end *umlgraph.Node) {
	if edge.IsConnected() {
		panic(fmt.Sprintf("umlbuilder: %v is already connected", edge))
	}
	if !b.diagram.Contains(start) || !b.diagram.Contains(end) {
		panic(fmt.Sprintf("umlbuilder: %v or %v is not part of the diagram", start, end))
	}
}

// AddEdge connects edge and adds it to the diagram if it is permitted.
// It returns whether the edge was added.
func (b *Builder) AddEdge(ctx context.Context, edge *umlgraph.Edge, start, end *umlgraph.Node, startPoint, endPoint geo.Point) bool {
	if _, ok := b.Check(ctx, edge, start, end, startPoint, endPoint); !ok {
		return false
	}
	edge.Connect(start, end)
	if err := b.diagram.AddEdge(edge); err != nil {
		// Both ends are residents of the diagram, checked above.
		panic(fmt.Sprintf("umlbuilder: %v", err))
	}
	log.Debug(ctx, "edge added", slog.F("edge", edge.String()))
	return true
}

// FindNode returns the top-most node whose bounds contain p, nil if none does.
// Children are drawn over their parents and later roots over earlier ones.
func (b *Builder) FindNode(p geo.Point) *umlgraph.Node {
	nodes := b.diagram.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		if b.renderer.Bounds(nodes[i]).Contains(p) {
			return nodes[i]
		}
	}
	return nil
}

// FindEdge returns the last added edge passing within EDGE_TOLERANCE of p, nil
// if none does.
func (b *Builder) FindEdge(p geo.Point) *umlgraph.Edge {
	edges := b.diagram.Edges()
	for i := len(edges) - 1; i >= 0; i-- {
		l := b.renderer.ConnectionPoints(edges[i])
		if p.DistanceToLine(l.Point1, l.Point2) <= EDGE_TOLERANCE {
			return edges[i]
		}
	}
	return nil
}

// AddNode places n at p and adds it to the diagram. Call nodes are attached to
// the lifeline under p, every other kind becomes a root.
func (b *Builder) AddNode(ctx context.Context, n *umlgraph.Node, p geo.Point) (err error) {
	defer xdefer.Errorf(&err, "failed to add %v", n)

	if !b.diagram.Type().AllowsNode(n.Kind()) {
		return fmt.Errorf("%v does not belong in a %v", n.Kind(), b.diagram.Type())
	}
	n.MoveTo(p)
	if !n.Is(umlgraph.CallNode) {
		err = b.diagram.AddRootNode(n)
	} else {
		lifeline := lifelineAt(b.FindNode(p))
		if lifeline == nil {
			return fmt.Errorf("no lifeline at %v", p.ToString())
		}
		err = lifeline.AddChild(n)
	}
	if err != nil {
		return err
	}
	log.Debug(ctx, "node added", slog.F("node", n.String()), slog.F("at", p.ToString()))
	return nil
}

func lifelineAt(n *umlgraph.Node) *umlgraph.Node {
	for ; n != nil; n = n.Parent() {
		if n.Is(umlgraph.ImplicitParameterNode) {
			return n
		}
	}
	return nil
}
