// Package umlconstraints decides whether an edge may be added to a diagram.
//
// A Constraint is a named pure predicate. A Set is the ordered list of
// constraints of one diagram type and permits a candidate edge only when every
// constraint does. ForType returns the shared Set of each diagram type.
package umlconstraints

import (
	"context"
	"strings"

	"cdr.dev/slog"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/log"
	"github.com/umlkit/umlkit/umlgraph"
)

// Renderer is the geometric and structural knowledge constraints rely on.
type Renderer interface {
	// Caller returns the call node that called n, nil when n is not called by one.
	Caller(n *umlgraph.Node) *umlgraph.Node
	// TopRectangleContains reports whether p falls within the header band of the lifeline n.
	TopRectangleContains(n *umlgraph.Node, p geo.Point) bool
	// HasEntryPoint reports whether a call node is already active in the diagram.
	HasEntryPoint() bool
}

// Candidate is an edge about to be added between Start and End.
// The edge is not connected yet.
type Candidate struct {
	Edge       *umlgraph.Edge
	Start      *umlgraph.Node
	End        *umlgraph.Node
	StartPoint geo.Point
	EndPoint   geo.Point
}

// Constraint is a named predicate over a candidate edge. Check returns false to reject it.
type Constraint struct {
	Name  string
	Check func(c Candidate, r Renderer) bool
}

// Set is an immutable ordered list of constraints.
type Set struct {
	constraints []Constraint
}

// NewSet returns a set checking cs in order.
func NewSet(cs ...Constraint) Set {
	return Set{constraints: append([]Constraint(nil), cs...)}
}

// Permits returns true iff every constraint does, stopping at the first rejection.
func (s Set) Permits(c Candidate, r Renderer) bool {
	_, ok := s.rejectedBy(c, r)
	return ok
}

// Explain is Permits that also returns the name of the rejecting constraint.
func (s Set) Explain(ctx context.Context, c Candidate, r Renderer) (rejectedBy string, ok bool) {
	rejectedBy, ok = s.rejectedBy(c, r)
	if !ok {
		log.Debug(ctx, "edge rejected",
			slog.F("edge", c.Edge.Kind().String()),
			slog.F("start", c.Start.String()),
			slog.F("end", c.End.String()),
			slog.F("constraint", rejectedBy),
		)
	}
	return rejectedBy, ok
}

func (s Set) rejectedBy(c Candidate, r Renderer) (string, bool) {
	for _, cons := range s.constraints {
		if !cons.Check(c, r) {
			return cons.Name, false
		}
	}
	return "", true
}

// Len returns the number of constraints in s.
func (s Set) Len() int {
	return len(s.constraints)
}

// Names returns the constraint names in checking order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.constraints))
	for _, c := range s.constraints {
		names = append(names, c.Name)
	}
	return names
}

func (s Set) String() string {
	return "[" + strings.Join(s.Names(), ", ") + "]"
}

var (
	stateSet = NewSet(
		NoteEdge(),
		NoteNode(),
		MaxEdges(2),
		NoEdgeFromFinalNode(),
		NoEdgeToInitialNode(),
	)
	sequenceSet = NewSet(
		NoteEdge(),
		NoteNode(),
		MaxEdges(1),
		NoEdgesFromParameterTop(),
		ReturnEdge(),
		CallEdgeEnd(),
		SingleEntryPoint(),
		NoCallCycle(),
	)
	classSet = NewSet(
		NoteEdge(),
		NoteNode(),
		MaxEdges(1),
		NoSelfEdge(umlgraph.GeneralizationEdge),
		NoDirectCycle(umlgraph.GeneralizationEdge),
	)
)

// ForType returns the constraint set shared by every diagram of type t.
func ForType(t umlgraph.Type) Set {
	switch t {
	case umlgraph.State:
		return stateSet
	case umlgraph.Sequence:
		return sequenceSet
	case umlgraph.Class:
		return classSet
	default:
		panic("umlconstraints: unknown diagram type " + t.String())
	}
}
