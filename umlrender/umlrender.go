// Package umlrender computes the geometry of diagram elements: bounds,
// connection points, label boxes and outlines.
//
// A Renderer reads exactly one diagram for its whole life and must not be used
// once the diagram is discarded. Geometry is recomputed on demand. With
// WithCache, bounds are memoized until the diagram's version changes.
package umlrender

import (
	"fmt"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlgraph"
)

const (
	DEFAULT_CELL_WIDTH  = 7
	DEFAULT_LINE_HEIGHT = 16

	STROKE_WIDTH = 1
)

type Renderer struct {
	diagram   *umlgraph.Diagram
	measurer  textmeasure.Measurer
	font      textmeasure.Font
	noteColor string

	cacheEnabled bool
	cacheVersion uint64
	cache        map[umlgraph.Element]geo.Rectangle
}

type Option func(*Renderer)

func WithMeasurer(m textmeasure.Measurer) Option {
	return func(r *Renderer) {
		r.measurer = m
	}
}

func WithFont(f textmeasure.Font) Option {
	return func(r *Renderer) {
		r.font = f
	}
}

// WithNoteColor sets the fill of notes.
func WithNoteColor(c string) Option {
	return func(r *Renderer) {
		r.noteColor = c
	}
}

func WithCache(enabled bool) Option {
	return func(r *Renderer) {
		r.cacheEnabled = enabled
	}
}

// New returns a renderer for d. Text is measured on a monospace grid unless
// WithMeasurer says otherwise.
func New(d *umlgraph.Diagram, opts ...Option) *Renderer {
	r := &Renderer{
		diagram:   d,
		measurer:  textmeasure.NewMonospace(DEFAULT_CELL_WIDTH, DEFAULT_LINE_HEIGHT),
		font:      textmeasure.DefaultFont(),
		noteColor: color.NoteFill,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Diagram() *umlgraph.Diagram {
	return r.diagram
}

func (r *Renderer) Font() textmeasure.Font {
	return r.font
}

// Bounds returns the smallest rectangle enclosing el. The bounds of a node
// include the bounds of all its descendants.
func (r *Renderer) Bounds(el umlgraph.Element) geo.Rectangle {
	if r.cacheEnabled {
		r.syncCache()
		if b, ok := r.cache[el]; ok {
			return b
		}
	}
	var b geo.Rectangle
	switch e := el.(type) {
	case *umlgraph.Node:
		b = r.intrinsicBounds(e)
		for _, c := range e.Children() {
			b = b.Union(r.Bounds(c))
		}
	case *umlgraph.Edge:
		b = r.edgeBounds(e)
	default:
		panic(fmt.Sprintf("umlrender: unknown element %T", el))
	}
	if r.cacheEnabled {
		r.cache[el] = b
	}
	return b
}

// DiagramBounds returns the union of the bounds of every root node and edge.
func (r *Renderer) DiagramBounds() geo.Rectangle {
	var b geo.Rectangle
	first := true
	add := func(o geo.Rectangle) {
		if first {
			b, first = o, false
			return
		}
		b = b.Union(o)
	}
	for _, n := range r.diagram.RootNodes() {
		add(r.Bounds(n))
	}
	for _, e := range r.diagram.Edges() {
		add(r.Bounds(e))
	}
	return b
}

// Invalidate drops every memoized rectangle.
func (r *Renderer) Invalidate() {
	r.cache = nil
}

func (r *Renderer) syncCache() {
	if r.cache == nil || r.cacheVersion != r.diagram.Version() {
		r.cache = make(map[umlgraph.Element]geo.Rectangle)
		r.cacheVersion = r.diagram.Version()
	}
}

// intrinsicBounds are the bounds of n alone, children excluded.
func (r *Renderer) intrinsicBounds(n *umlgraph.Node) geo.Rectangle {
	switch n.Kind() {
	case umlgraph.NoteNode:
		return r.noteBounds(n)
	case umlgraph.StateNode:
		return r.stateBounds(n)
	case umlgraph.InitialStateNode, umlgraph.FinalStateNode:
		return circleBounds(n)
	case umlgraph.PointNode:
		return geo.NewRectangleAt(n.Position(), geo.Dimension{})
	case umlgraph.ClassNode:
		return r.classBounds(n)
	case umlgraph.ImplicitParameterNode:
		return r.lifelineBounds(n)
	case umlgraph.CallNode:
		return r.callBounds(n)
	default:
		panic(fmt.Sprintf("umlrender: no shape for %v", n.Kind()))
	}
}

func (r *Renderer) textBox(text string, font textmeasure.Font, decoration label.Decoration) geo.Dimension {
	return label.Box(r.measurer, font, text, decoration)
}

// textRect returns where text is drawn inside region, padding excluded.
func (r *Renderer) textRect(text string, font textmeasure.Font, region geo.Rectangle, align label.Alignment) geo.Rectangle {
	d := r.textBox(text, font, label.None)
	inner := geo.NewRectangle(
		region.X+label.TEXT_PADDING,
		region.Y+label.TEXT_PADDING,
		region.Width-2*label.TEXT_PADDING,
		region.Height-2*label.TEXT_PADDING,
	)
	return geo.NewRectangleAt(label.Place(inner, d, align), d)
}
