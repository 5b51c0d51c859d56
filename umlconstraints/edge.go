package umlconstraints

import (
	"fmt"

	"github.com/umlkit/umlkit/umlgraph"
)

// NoteEdge permits a note edge only when one of its ends is a note.
func NoteEdge() Constraint {
	return Constraint{
		Name: "note_edge",
		Check: func(c Candidate, _ Renderer) bool {
			return !c.Edge.Is(umlgraph.NoteEdge) ||
				c.Start.Is(umlgraph.NoteNode) || c.End.Is(umlgraph.NoteNode)
		},
	}
}

// NoteNode permits only note edges on notes.
func NoteNode() Constraint {
	return Constraint{
		Name: "note_node",
		Check: func(c Candidate, _ Renderer) bool {
			return c.Edge.Is(umlgraph.NoteEdge) ||
				!(c.Start.Is(umlgraph.NoteNode) || c.End.Is(umlgraph.NoteNode))
		},
	}
}

// MaxEdges permits at most n edges of the candidate's kind from start to end.
func MaxEdges(n int) Constraint {
	return Constraint{
		Name: fmt.Sprintf("max_edges(%d)", n),
		Check: func(c Candidate, _ Renderer) bool {
			d := c.Start.Diagram()
			if d == nil {
				return true
			}
			count := 0
			for _, e := range d.EdgesBetween(c.Start, c.End) {
				if e.Kind() == c.Edge.Kind() {
					count++
				}
			}
			return count < n
		},
	}
}

// NoSelfEdge rejects edges of kind that start and end on the same node.
func NoSelfEdge(kind umlgraph.EdgeKind) Constraint {
	return Constraint{
		Name: "no_self_edge(" + kind.String() + ")",
		Check: func(c Candidate, _ Renderer) bool {
			return !c.Edge.Is(kind) || c.Start != c.End
		},
	}
}

// NoDirectCycle rejects an edge of kind when one already goes the other way.
func NoDirectCycle(kind umlgraph.EdgeKind) Constraint {
	return Constraint{
		Name: "no_direct_cycle(" + kind.String() + ")",
		Check: func(c Candidate, _ Renderer) bool {
			d := c.End.Diagram()
			if !c.Edge.Is(kind) || d == nil {
				return true
			}
			for _, e := range d.EdgesBetween(c.End, c.Start) {
				if e.Is(kind) {
					return false
				}
			}
			return true
		},
	}
}
