package umlgraph

import "fmt"

// Type is the kind of a diagram. It is fixed when the diagram is created.
type Type int

const (
	Class Type = iota
	Sequence
	State
)

func Types() []Type {
	return []Type{Class, Sequence, State}
}

func (t Type) String() string {
	switch t {
	case Class:
		return "ClassDiagram"
	case Sequence:
		return "SequenceDiagram"
	case State:
		return "StateDiagram"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown diagram type %q", s)
}

// FileExtension is the suffix used for files holding diagrams of this type.
func (t Type) FileExtension() string {
	switch t {
	case Class:
		return ".class.jet"
	case Sequence:
		return ".sequence.jet"
	case State:
		return ".state.jet"
	default:
		return ".jet"
	}
}

type NodeKind int

const (
	StateNode NodeKind = iota
	InitialStateNode
	FinalStateNode
	NoteNode
	PointNode
	ClassNode
	// ImplicitParameterNode is a sequence diagram lifeline.
	ImplicitParameterNode
	// CallNode is an activation box on a lifeline.
	CallNode
)

func NodeKinds() []NodeKind {
	return []NodeKind{
		StateNode,
		InitialStateNode,
		FinalStateNode,
		NoteNode,
		PointNode,
		ClassNode,
		ImplicitParameterNode,
		CallNode,
	}
}

func (k NodeKind) String() string {
	switch k {
	case StateNode:
		return "StateNode"
	case InitialStateNode:
		return "InitialStateNode"
	case FinalStateNode:
		return "FinalStateNode"
	case NoteNode:
		return "NoteNode"
	case PointNode:
		return "PointNode"
	case ClassNode:
		return "ClassNode"
	case ImplicitParameterNode:
		return "ImplicitParameterNode"
	case CallNode:
		return "CallNode"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

func ParseNodeKind(s string) (NodeKind, error) {
	for _, k := range NodeKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown node type %q", s)
}

type EdgeKind int

const (
	StateTransitionEdge EdgeKind = iota
	NoteEdge
	DependencyEdge
	GeneralizationEdge
	CallEdge
	ReturnEdge
)

func EdgeKinds() []EdgeKind {
	return []EdgeKind{
		StateTransitionEdge,
		NoteEdge,
		DependencyEdge,
		GeneralizationEdge,
		CallEdge,
		ReturnEdge,
	}
}

func (k EdgeKind) String() string {
	switch k {
	case StateTransitionEdge:
		return "StateTransitionEdge"
	case NoteEdge:
		return "NoteEdge"
	case DependencyEdge:
		return "DependencyEdge"
	case GeneralizationEdge:
		return "GeneralizationEdge"
	case CallEdge:
		return "CallEdge"
	case ReturnEdge:
		return "ReturnEdge"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

func ParseEdgeKind(s string) (EdgeKind, error) {
	for _, k := range EdgeKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown edge type %q", s)
}

// AllowsNode reports whether nodes of kind k belong in diagrams of type t.
func (t Type) AllowsNode(k NodeKind) bool {
	switch k {
	case NoteNode, PointNode:
		return true
	case StateNode, InitialStateNode, FinalStateNode:
		return t == State
	case ClassNode:
		return t == Class
	case ImplicitParameterNode, CallNode:
		return t == Sequence
	default:
		return false
	}
}

// AllowsEdge reports whether edges of kind k belong in diagrams of type t.
func (t Type) AllowsEdge(k EdgeKind) bool {
	switch k {
	case NoteEdge:
		return true
	case StateTransitionEdge:
		return t == State
	case DependencyEdge, GeneralizationEdge:
		return t == Class
	case CallEdge, ReturnEdge:
		return t == Sequence
	default:
		return false
	}
}
