package umlconstraints

import (
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/umlgraph"
)

// NoEdgesFromParameterTop rejects edges starting in the header band of a lifeline.
func NoEdgesFromParameterTop() Constraint {
	return Constraint{
		Name: "no_edges_from_parameter_top",
		Check: func(c Candidate, r Renderer) bool {
			return !(c.Start.Is(umlgraph.ImplicitParameterNode) && r.TopRectangleContains(c.Start, c.StartPoint))
		},
	}
}

// ReturnEdge permits a return edge only from a call node back to the call node
// that called it, on another lifeline.
func ReturnEdge() Constraint {
	return Constraint{
		Name: "return_edge",
		Check: func(c Candidate, r Renderer) bool {
			if !c.Edge.Is(umlgraph.ReturnEdge) {
				return true
			}
			if !c.Start.Is(umlgraph.CallNode) || !c.End.Is(umlgraph.CallNode) {
				return false
			}
			caller := r.Caller(c.Start)
			return caller != nil && caller == c.End && c.Start.Parent() != c.End.Parent()
		},
	}
}

// CallEdgeEnd rejects call edges landing in the header band of a lifeline,
// unless they create the object the lifeline stands for.
func CallEdgeEnd() Constraint {
	return Constraint{
		Name: "call_edge_end",
		Check: func(c Candidate, r Renderer) bool {
			return !(c.Edge.Is(umlgraph.CallEdge) &&
				c.End.Is(umlgraph.ImplicitParameterNode) &&
				r.TopRectangleContains(c.End, c.EndPoint) &&
				!CanCreateConstructor(c.Start, c.End, c.EndPoint, r))
		},
	}
}

// CanCreateConstructor reports whether a call from start landing at endPoint
// constructs end: start is a lifeline or a call node, endPoint lies in the header
// band of the lifeline end, and end has no call nodes yet.
func CanCreateConstructor(start, end *umlgraph.Node, endPoint geo.Point, r Renderer) bool {
	if !start.Is(umlgraph.ImplicitParameterNode) && !start.Is(umlgraph.CallNode) {
		return false
	}
	return end.Is(umlgraph.ImplicitParameterNode) &&
		r.TopRectangleContains(end, endPoint) &&
		!end.HasChildren()
}

// SingleEntryPoint permits a call edge to start on a lifeline only while no call
// is active in the diagram.
func SingleEntryPoint() Constraint {
	return Constraint{
		Name: "single_entry_point",
		Check: func(c Candidate, r Renderer) bool {
			return !(c.Edge.Is(umlgraph.CallEdge) &&
				c.Start.Is(umlgraph.ImplicitParameterNode) &&
				r.HasEntryPoint())
		},
	}
}

// NoCallCycle keeps the callers of call nodes a forest. It rejects a call edge
// from a node to itself, one ending on a call node that already has a caller, and
// one ending on a call that is still waiting on the start.
func NoCallCycle() Constraint {
	return Constraint{
		Name: "no_call_cycle",
		Check: func(c Candidate, r Renderer) bool {
			if !c.Edge.Is(umlgraph.CallEdge) {
				return true
			}
			if c.Start == c.End {
				return false
			}
			if !c.End.Is(umlgraph.CallNode) {
				return true
			}
			if r.Caller(c.End) != nil {
				return false
			}
			if !c.Start.Is(umlgraph.CallNode) {
				return true
			}
			seen := make(map[*umlgraph.Node]bool)
			for n := c.Start; n != nil && !seen[n]; n = r.Caller(n) {
				if n == c.End {
					return false
				}
				seen[n] = true
			}
			return true
		},
	}
}
