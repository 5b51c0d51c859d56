package umlconstraints

import "github.com/umlkit/umlkit/umlgraph"

func NoEdgeFromFinalNode() Constraint {
	return Constraint{
		Name: "no_edge_from_final_node",
		Check: func(c Candidate, _ Renderer) bool {
			return !c.Start.Is(umlgraph.FinalStateNode)
		},
	}
}

func NoEdgeToInitialNode() Constraint {
	return Constraint{
		Name: "no_edge_to_initial_node",
		Check: func(c Candidate, _ Renderer) bool {
			return !c.End.Is(umlgraph.InitialStateNode)
		},
	}
}
