// Package umlgraph is the in-memory model of a UML diagram: typed nodes with a containment
// tree, directed edges between them, and the ordered list of root nodes.
//
// Every mutation goes through a method so that the diagram's version stamp changes.
// Derived state such as cached geometry compares against Version to know it is stale.
package umlgraph

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/umlkit/umlkit/lib/geo"
)

var (
	ErrCycle           = errors.New("containment cycle")
	ErrNotResident     = errors.New("node is not part of the diagram")
	ErrAlreadyParented = errors.New("node already has a parent or is a diagram root")
	ErrNotConnected    = errors.New("edge is not connected")
)

type Diagram struct {
	typ   Type
	roots []*Node
	edges []*Edge

	version uint64
}

func NewDiagram(t Type) *Diagram {
	return &Diagram{typ: t}
}

func (d *Diagram) Type() Type {
	return d.typ
}

// Version changes every time the diagram or one of its elements is mutated.
func (d *Diagram) Version() uint64 {
	return d.version
}

func (d *Diagram) touch() {
	if d != nil {
		d.version++
	}
}

func (d *Diagram) RootNodes() []*Node {
	return append([]*Node(nil), d.roots...)
}

func (d *Diagram) AddRootNode(n *Node) error {
	if n.diagram != nil || n.parent != nil {
		return fmt.Errorf("cannot add %v as root: %w", n, ErrAlreadyParented)
	}
	d.roots = append(d.roots, n)
	n.setDiagram(d)
	d.touch()
	return nil
}

// RemoveRootNode removes n, its descendants and every edge touching any of them.
func (d *Diagram) RemoveRootNode(n *Node) {
	for i, r := range d.roots {
		if r == n {
			d.roots = append(d.roots[:i], d.roots[i+1:]...)
			d.removeEdgesOf(n)
			n.setDiagram(nil)
			d.touch()
			return
		}
	}
}

func (d *Diagram) removeEdgesOf(n *Node) {
	edges := d.edges[:0]
	for _, e := range d.edges {
		if e.start == n || e.end == n || e.start.IsDescendantOf(n) || e.end.IsDescendantOf(n) {
			e.diagram = nil
			continue
		}
		edges = append(edges, e)
	}
	d.edges = edges
}

// Nodes returns every node of the diagram, depth-first, parents before children.
func (d *Diagram) Nodes() []*Node {
	var nodes []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		nodes = append(nodes, n)
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, r := range d.roots {
		visit(r)
	}
	return nodes
}

// Contains reports whether n is a root of d or a descendant of one.
func (d *Diagram) Contains(n *Node) bool {
	return n != nil && n.diagram == d
}

func (d *Diagram) AddEdge(e *Edge) error {
	if !e.IsConnected() {
		return ErrNotConnected
	}
	if !d.Contains(e.start) || !d.Contains(e.end) {
		return fmt.Errorf("cannot add %v: %w", e, ErrNotResident)
	}
	d.edges = append(d.edges, e)
	e.diagram = d
	d.touch()
	return nil
}

func (d *Diagram) RemoveEdge(e *Edge) {
	for i, e2 := range d.edges {
		if e2 == e {
			d.edges = append(d.edges[:i], d.edges[i+1:]...)
			e.diagram = nil
			d.touch()
			return
		}
	}
}

func (d *Diagram) Edges() []*Edge {
	return append([]*Edge(nil), d.edges...)
}

func (d *Diagram) EdgesConnectedTo(n *Node) []*Edge {
	var edges []*Edge
	for _, e := range d.edges {
		if e.start == n || e.end == n {
			edges = append(edges, e)
		}
	}
	return edges
}

// EdgesBetween returns the edges going from start to end, in insertion order.
func (d *Diagram) EdgesBetween(start, end *Node) []*Edge {
	var edges []*Edge
	for _, e := range d.edges {
		if e.start == start && e.end == end {
			edges = append(edges, e)
		}
	}
	return edges
}

type Node struct {
	ID string `json:"id"`

	kind     NodeKind
	position geo.Point
	name     string

	parent   *Node
	children []*Node
	diagram  *Diagram
}

func NewNode(kind NodeKind) *Node {
	return &Node{
		ID:   uuid.NewString(),
		kind: kind,
	}
}

func (n *Node) Kind() NodeKind {
	return n.kind
}

func (n *Node) Is(kind NodeKind) bool {
	return n != nil && n.kind == kind
}

func (n *Node) Position() geo.Point {
	return n.position
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) SetName(name string) {
	n.name = name
	n.diagram.touch()
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Diagram returns the diagram n is part of, nil if it has not been added to one.
func (n *Node) Diagram() *Diagram {
	return n.diagram
}

// Translate moves n and all its descendants.
func (n *Node) Translate(dx, dy float64) {
	n.translate(dx, dy)
	n.diagram.touch()
}

func (n *Node) translate(dx, dy float64) {
	n.position = n.position.Translate(dx, dy)
	for _, c := range n.children {
		c.translate(dx, dy)
	}
}

// MoveTo translates n, and its descendants with it, so that n sits at p.
func (n *Node) MoveTo(p geo.Point) {
	n.Translate(p.X-n.position.X, p.Y-n.position.Y)
}

// AddChild appends c to the children of n.
func (n *Node) AddChild(c *Node) error {
	if c.parent != nil || (c.diagram != nil && c.diagram != n.diagram) || n.diagram.isRoot(c) {
		return fmt.Errorf("cannot add %v to %v: %w", c, n, ErrAlreadyParented)
	}
	if c == n || n.IsDescendantOf(c) {
		return fmt.Errorf("cannot add %v to %v: %w", c, n, ErrCycle)
	}
	c.parent = n
	n.children = append(n.children, c)
	c.setDiagram(n.diagram)
	n.diagram.touch()
	return nil
}

// RemoveChild detaches c from n along with every edge touching c or its descendants.
func (n *Node) RemoveChild(c *Node) {
	for i, c2 := range n.children {
		if c2 == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if n.diagram != nil {
				n.diagram.removeEdgesOf(c)
			}
			c.parent = nil
			c.setDiagram(nil)
			n.diagram.touch()
			return
		}
	}
}

func (d *Diagram) isRoot(n *Node) bool {
	if d == nil {
		return false
	}
	for _, r := range d.roots {
		if r == n {
			return true
		}
	}
	return false
}

func (n *Node) setDiagram(d *Diagram) {
	n.diagram = d
	for _, c := range n.children {
		c.setDiagram(d)
	}
}

func (n *Node) IsDescendantOf(ancestor *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Level is 0 for root nodes and grows by one per containment level.
func (n *Node) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

func (n *Node) String() string {
	if n.name != "" {
		return fmt.Sprintf("%s(%s)", n.kind, n.name)
	}
	return n.kind.String()
}

type Edge struct {
	ID string `json:"id"`

	kind  EdgeKind
	start *Node
	end   *Node

	startLabel  string
	middleLabel string
	endLabel    string

	diagram *Diagram
}

func NewEdge(kind EdgeKind) *Edge {
	return &Edge{
		ID:   uuid.NewString(),
		kind: kind,
	}
}

func (e *Edge) Kind() EdgeKind {
	return e.kind
}

func (e *Edge) Is(kind EdgeKind) bool {
	return e != nil && e.kind == kind
}

// Connect sets both endpoints of e. It may only be called once.
func (e *Edge) Connect(start, end *Node) {
	if start == nil || end == nil {
		panic(fmt.Sprintf("umlgraph: connecting %v to a nil node", e.kind))
	}
	if e.IsConnected() {
		panic(fmt.Sprintf("umlgraph: %v is already connected", e.kind))
	}
	e.start = start
	e.end = end
}

func (e *Edge) IsConnected() bool {
	return e.start != nil && e.end != nil
}

func (e *Edge) Start() *Node {
	return e.start
}

func (e *Edge) End() *Node {
	return e.end
}

func (e *Edge) IsSelfEdge() bool {
	return e.IsConnected() && e.start == e.end
}

// Diagram returns the diagram e was added to, nil if none.
func (e *Edge) Diagram() *Diagram {
	return e.diagram
}

func (e *Edge) StartLabel() string {
	return e.startLabel
}

func (e *Edge) MiddleLabel() string {
	return e.middleLabel
}

func (e *Edge) EndLabel() string {
	return e.endLabel
}

func (e *Edge) SetStartLabel(s string) {
	e.startLabel = s
	e.diagram.touch()
}

func (e *Edge) SetMiddleLabel(s string) {
	e.middleLabel = s
	e.diagram.touch()
}

func (e *Edge) SetEndLabel(s string) {
	e.endLabel = s
	e.diagram.touch()
}

func (e *Edge) String() string {
	if !e.IsConnected() {
		return e.kind.String()
	}
	return fmt.Sprintf("%s(%v -> %v)", e.kind, e.start, e.end)
}

// Element is either a *Node or an *Edge.
type Element interface {
	fmt.Stringer
	element()
}

func (*Node) element() {}
func (*Edge) element() {}
