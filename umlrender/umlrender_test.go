package umlrender_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"oss.terrastruct.com/util-go/assert"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlrender"
	"github.com/umlkit/umlkit/umlserde"
)

var mono = textmeasure.NewMonospace(10, 16)

// fixedMeasurer measures every non empty text as the same dimension.
type fixedMeasurer geo.Dimension

func (m fixedMeasurer) Measure(_ textmeasure.Font, s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	return m.Width, m.Height
}

type paintCall struct {
	op    string
	path  string
	fill  string
	sharp bool
}

// recorder is a Painter remembering what it was asked to paint.
type recorder struct {
	calls []paintCall
	texts []string
}

func (p *recorder) StrokeAndFillPath(path, fill string, sharp bool) {
	p.calls = append(p.calls, paintCall{op: "fill", path: path, fill: fill, sharp: sharp})
}

func (p *recorder) StrokePath(path string, dashed bool) {
	p.calls = append(p.calls, paintCall{op: "stroke", path: path, sharp: dashed})
}

func (p *recorder) DrawText(text string, _ geo.Rectangle, _ label.Alignment, _ textmeasure.Font) {
	p.texts = append(p.texts, text)
}

func addRoot(t *testing.T, d *umlgraph.Diagram, kind umlgraph.NodeKind, x, y float64, name string) *umlgraph.Node {
	n := umlgraph.NewNode(kind)
	n.MoveTo(geo.NewPoint(x, y))
	n.SetName(name)
	assert.Success(t, d.AddRootNode(n))
	return n
}

func addChild(t *testing.T, parent *umlgraph.Node, kind umlgraph.NodeKind, x, y float64) *umlgraph.Node {
	n := umlgraph.NewNode(kind)
	n.MoveTo(geo.NewPoint(x, y))
	assert.Success(t, parent.AddChild(n))
	return n
}

func connect(t *testing.T, d *umlgraph.Diagram, kind umlgraph.EdgeKind, start, end *umlgraph.Node) *umlgraph.Edge {
	e := umlgraph.NewEdge(kind)
	e.Connect(start, end)
	assert.Success(t, d.AddEdge(e))
	return e
}

func TestNoteBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text geo.Dimension
		exp  geo.Rectangle
	}{
		// 86x16 padded by 7 on every side measures 100x30
		{name: "content_width", text: geo.NewDimension(86, 16), exp: geo.NewRectangle(10, 20, 108, 40)},
		// 10x50 padded
		{name: "content_height", text: geo.NewDimension(-4, 36), exp: geo.NewRectangle(10, 20, 60, 50)},
		{name: "default", text: geo.Dimension{}, exp: geo.NewRectangle(10, 20, 60, 40)},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := umlgraph.NewDiagram(umlgraph.State)
			n := addRoot(t, d, umlgraph.NoteNode, 10, 20, "note")
			if tc.text.IsZero() {
				n.SetName("")
			}
			r := umlrender.New(d, umlrender.WithMeasurer(fixedMeasurer(tc.text)))
			assert.Equal(t, tc.exp, r.Bounds(n))
		})
	}
}

func TestDrawNote(t *testing.T) {
	t.Parallel()

	d := umlgraph.NewDiagram(umlgraph.Class)
	n := addRoot(t, d, umlgraph.NoteNode, 0, 0, "")
	r := umlrender.New(d)

	p := &recorder{}
	r.Draw(p)
	tassert.Equal(t, []paintCall{
		{op: "fill", path: "M 0 0 L 52 0 L 60 8 L 60 40 L 0 40 L 0 0", fill: color.NoteFill, sharp: true},
		{op: "fill", path: "M 52 0 L 52 8 L 60 8 L 52 0", fill: color.White, sharp: true},
	}, p.calls)
	assert.Equal(t, 0, len(p.texts))

	n.SetName("hello")
	p = &recorder{}
	r.DrawNode(p, n)
	tassert.Equal(t, []string{"hello"}, p.texts)
}

func TestBoundsIdempotent(t *testing.T) {
	t.Parallel()

	for _, cache := range []bool{false, true} {
		cache := cache
		t.Run(fmt.Sprint(cache), func(t *testing.T) {
			t.Parallel()
			d := loadState(t)
			r := umlrender.New(d, umlrender.WithMeasurer(textmeasure.NewMonospace(7, 16)), umlrender.WithCache(cache))
			for _, n := range d.Nodes() {
				assert.Equal(t, r.Bounds(n), r.Bounds(n))
			}
			for _, e := range d.Edges() {
				assert.Equal(t, r.Bounds(e), r.Bounds(e))
				assert.Equal(t, r.ConnectionPoints(e), r.ConnectionPoints(e))
			}
			assert.Equal(t, r.DiagramBounds(), r.DiagramBounds())
		})
	}
}

func TestCacheInvalidation(t *testing.T) {
	t.Parallel()

	d := umlgraph.NewDiagram(umlgraph.State)
	s1 := addRoot(t, d, umlgraph.StateNode, 0, 0, "S1")
	s2 := addRoot(t, d, umlgraph.StateNode, 200, 0, "S2")
	e := connect(t, d, umlgraph.StateTransitionEdge, s1, s2)
	cached := umlrender.New(d, umlrender.WithMeasurer(mono), umlrender.WithCache(true))
	fresh := umlrender.New(d, umlrender.WithMeasurer(mono))

	assert.Equal(t, geo.NewRectangle(0, 0, 80, 60), cached.Bounds(s1))
	edgeBefore := cached.Bounds(e)

	s1.Translate(0, 100)
	assert.Equal(t, geo.NewRectangle(0, 100, 80, 60), cached.Bounds(s1))
	assert.Equal(t, fresh.Bounds(e), cached.Bounds(e))
	assert.NotEqual(t, edgeBefore, cached.Bounds(e))

	s1.SetName("a much longer state name")
	assert.Equal(t, fresh.Bounds(s1), cached.Bounds(s1))
	tassert.Greater(t, cached.Bounds(s1).Width, 80.)

	cached.Invalidate()
	assert.Equal(t, fresh.Bounds(s1), cached.Bounds(s1))
}

func TestSelfEdge(t *testing.T) {
	t.Parallel()

	for _, kind := range []umlgraph.NodeKind{umlgraph.StateNode, umlgraph.NoteNode, umlgraph.ClassNode} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			d := umlgraph.NewDiagram(umlgraph.Class)
			if kind == umlgraph.StateNode {
				d = umlgraph.NewDiagram(umlgraph.State)
			}
			n := addRoot(t, d, kind, 40, 40, "node")
			edgeKind := umlgraph.DependencyEdge
			switch kind {
			case umlgraph.StateNode:
				edgeKind = umlgraph.StateTransitionEdge
			case umlgraph.NoteNode:
				edgeKind = umlgraph.NoteEdge
			}
			e := connect(t, d, edgeKind, n, n)
			r := umlrender.New(d, umlrender.WithMeasurer(mono))

			b := r.Bounds(n)
			l := r.ConnectionPoints(e)
			assert.True(t, !l.Point1.Equals(l.Point2))
			s1, ok := geo.SideOf(b, l.Point1)
			assert.True(t, ok)
			s2, ok := geo.SideOf(b, l.Point2)
			assert.True(t, ok)
			assert.Equal(t, geo.Top, s1)
			assert.Equal(t, geo.Right, s2)
			assert.Equal(t, geo.NewPoint(b.MaxX()-umlrender.SELF_EDGE_OFFSET, b.Y), l.Point1)

			// the loop sticks out of the node
			tassert.Greater(t, r.Bounds(e).MaxX(), b.MaxX())
			tassert.Less(t, r.Bounds(e).Y, b.Y)
		})
	}
}

func loadState(t *testing.T) *umlgraph.Diagram {
	d, err := umlserde.ReadFile(os.DirFS("testdata"), "state.json")
	assert.Success(t, err)
	return d
}

func nodeByName(d *umlgraph.Diagram, name string) *umlgraph.Node {
	for _, n := range d.Nodes() {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

func nodeByKind(d *umlgraph.Diagram, kind umlgraph.NodeKind) *umlgraph.Node {
	for _, n := range d.Nodes() {
		if n.Is(kind) {
			return n
		}
	}
	return nil
}

func edgeByMiddleLabel(d *umlgraph.Diagram, text string) *umlgraph.Edge {
	for _, e := range d.Edges() {
		if e.MiddleLabel() == text {
			return e
		}
	}
	return nil
}

func edgeEndingAt(d *umlgraph.Diagram, kind umlgraph.EdgeKind, end *umlgraph.Node) *umlgraph.Edge {
	for _, e := range d.Edges() {
		if e.Is(kind) && e.End() == end {
			return e
		}
	}
	return nil
}

// TestStateLayout checks the layout of testdata/state.json:
//
//	 ●
//	    ┌────┐ e1 ┌────┐⟲ self
//	    │ S1 │───▶│ S2 │
//	    │    │◀───│    │     ◉
//	    └────┘ e2 └────┘   ╱
//	                │     ╱
//	              ┌────┐ ╱  ┌──────────────────┐
//	              │ S3 │────│ note             │
//	              └────┘    └──────────────────┘
func TestStateLayout(t *testing.T) {
	t.Parallel()

	d := loadState(t)
	r := umlrender.New(d, umlrender.WithMeasurer(textmeasure.NewMonospace(7, 16)))

	s1 := nodeByName(d, "S1")
	s2 := nodeByName(d, "S2")
	s3 := nodeByName(d, "S3")
	note := nodeByKind(d, umlgraph.NoteNode)
	initial := nodeByKind(d, umlgraph.InitialStateNode)
	final := nodeByKind(d, umlgraph.FinalStateNode)

	t.Run("positions", func(t *testing.T) {
		assert.Equal(t, geo.NewPoint(250, 100), r.Bounds(s1).TopLeft())
		assert.Equal(t, geo.NewPoint(510, 100), r.Bounds(s2).TopLeft())
		assert.Equal(t, geo.NewPoint(520, 310), r.Bounds(s3).TopLeft())
		assert.Equal(t, geo.NewPoint(690, 320), r.Bounds(note).TopLeft())
		assert.Equal(t, geo.NewPoint(150, 70), r.Bounds(initial).TopLeft())
		assert.Equal(t, geo.NewPoint(640, 230), r.Bounds(final).TopLeft())
	})

	t.Run("dimensions", func(t *testing.T) {
		for _, n := range []*umlgraph.Node{s1, s2, s3} {
			assert.Equal(t, geo.NewDimension(umlrender.STATE_DEFAULT_WIDTH, umlrender.STATE_DEFAULT_HEIGHT), r.Bounds(n).Dimension())
		}
		for _, n := range []*umlgraph.Node{initial, final} {
			assert.Equal(t, geo.NewDimension(umlrender.CIRCLE_DIAMETER, umlrender.CIRCLE_DIAMETER), r.Bounds(n).Dimension())
		}
		tassert.Greater(t, r.Bounds(note).Width, float64(umlrender.NOTE_DEFAULT_WIDTH))
	})

	t.Run("initial_to_s1", func(t *testing.T) {
		l := r.ConnectionPoints(edgeByMiddleLabel(d, "start"))
		tassert.InDelta(t, r.Bounds(initial).MaxX(), l.Point1.X, 1)
		tassert.InDelta(t, r.Bounds(s1).X, l.Point2.X, 0.001)
	})

	t.Run("s1_s2", func(t *testing.T) {
		e1 := r.ConnectionPoints(edgeByMiddleLabel(d, "e1"))
		tassert.InDelta(t, r.Bounds(s1).MaxX(), e1.Point1.X, 0.001)
		tassert.InDelta(t, r.Bounds(s2).X, e1.Point2.X, 0.001)

		e2 := r.ConnectionPoints(edgeByMiddleLabel(d, "e2"))
		tassert.InDelta(t, r.Bounds(s2).X, e2.Point1.X, 0.001)
		tassert.InDelta(t, r.Bounds(s1).MaxX(), e2.Point2.X, 0.001)

		// both transitions are drawn apart, on either side of the centers
		center := r.Bounds(s1).Center().Y
		tassert.Greater(t, e1.Point1.Y, center)
		tassert.Less(t, e2.Point1.Y, center)
	})

	t.Run("self", func(t *testing.T) {
		l := r.ConnectionPoints(edgeByMiddleLabel(d, "self"))
		tassert.InDelta(t, r.Bounds(s2).Y, l.Point1.Y, 0.001)
		tassert.InDelta(t, r.Bounds(s2).MaxX(), l.Point2.X, 0.001)
	})

	t.Run("s2_to_s3", func(t *testing.T) {
		l := r.ConnectionPoints(edgeEndingAt(d, umlgraph.StateTransitionEdge, s3))
		tassert.InDelta(t, r.Bounds(s2).MaxY(), l.Point1.Y, 0.001)
		tassert.InDelta(t, r.Bounds(s3).Y, l.Point2.Y, 0.001)
	})

	t.Run("s3_to_final", func(t *testing.T) {
		l := r.ConnectionPoints(edgeEndingAt(d, umlgraph.StateTransitionEdge, final))
		tassert.InDelta(t, r.Bounds(s3).Y, l.Point1.Y, 0.001)
		assert.True(t, r.Bounds(final).Contains(l.Point2))
	})

	t.Run("note_edge", func(t *testing.T) {
		l := r.ConnectionPoints(edgeEndingAt(d, umlgraph.NoteEdge, s3))
		tassert.InDelta(t, r.Bounds(note).X, l.Point1.X, 0.001)
		assert.True(t, r.Bounds(s3).Contains(l.Point2))
	})

	t.Run("labels", func(t *testing.T) {
		labels := r.Labels(edgeByMiddleLabel(d, "e1"))
		assert.Equal(t, 1, len(labels))
		assert.String(t, "e1", labels[0].Text)
		// above the line
		tassert.Less(t, labels[0].Box.MaxY(), r.ConnectionPoints(edgeByMiddleLabel(d, "e1")).Point1.Y)

		self := r.Labels(edgeByMiddleLabel(d, "self"))
		tassert.Less(t, self[0].Box.MaxY(), r.Bounds(s2).Y)
	})

	t.Run("draw", func(t *testing.T) {
		p := &recorder{}
		r.Draw(p)
		tassert.Equal(t, []string{"S1", "S2", "S3", "A note wider than the default width", "start", "e1", "e2", "self"}, p.texts)
	})
}

func TestEdgeLabelWrapping(t *testing.T) {
	t.Parallel()

	const text = "apple banana orange kiwi peach grape raspberry"
	testCases := []struct {
		dx, dy float64
		exp    []string
	}{
		{dx: 1000, dy: 0, exp: []string{text}},
		{dx: 400, dy: 0, exp: []string{"apple banana orange kiwi", "peach grape raspberry"}},
		{dx: 200, dy: 200, exp: []string{"apple banana", "orange kiwi peach", "grape raspberry"}},
		{dx: 150, dy: 0, exp: []string{"apple", "banana", "orange", "kiwi", "peach", "grape", "raspberry"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%v_%v", tc.dx, tc.dy), func(t *testing.T) {
			t.Parallel()
			d := umlgraph.NewDiagram(umlgraph.Class)
			n1 := addRoot(t, d, umlgraph.ClassNode, 0, 0, "")
			n2 := addRoot(t, d, umlgraph.ClassNode, 0, 0, "")
			n2.Translate(tc.dx, tc.dy)
			e := connect(t, d, umlgraph.DependencyEdge, n1, n2)
			e.SetMiddleLabel(text)
			r := umlrender.New(d, umlrender.WithMeasurer(mono))

			labels := r.Labels(e)
			assert.Equal(t, 1, len(labels))
			tassert.Equal(t, tc.exp, strings.Split(labels[0].Text, "\n"))
			assert.True(t, r.Bounds(e).ContainsRect(labels[0].Box))
		})
	}
}

func TestDispatchCoversAllKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range umlgraph.NodeKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			d := umlgraph.NewDiagram(umlgraph.Sequence)
			lifeline := addRoot(t, d, umlgraph.ImplicitParameterNode, 0, 0, "l")
			n := lifeline
			if kind != umlgraph.ImplicitParameterNode {
				n = umlgraph.NewNode(kind)
				if kind == umlgraph.CallNode {
					assert.Success(t, lifeline.AddChild(n))
				} else {
					assert.Success(t, d.AddRootNode(n))
				}
			}
			other := addRoot(t, d, umlgraph.NoteNode, 300, 300, "")
			r := umlrender.New(d, umlrender.WithMeasurer(mono))
			tassert.NotPanics(t, func() {
				r.Bounds(n)
				r.DrawNode(&recorder{}, n)
			})
			for _, ek := range umlgraph.EdgeKinds() {
				e := umlgraph.NewEdge(ek)
				e.Connect(n, other)
				tassert.NotPanics(t, func() {
					r.ConnectionPoints(e)
					r.Bounds(e)
					r.DrawEdge(&recorder{}, e)
				}, "%v", ek)
			}
		})
	}
	for _, ek := range umlgraph.EdgeKinds() {
		tassert.NotPanics(t, func() { umlrender.EndArrowhead(ek) })
	}
}

func TestUnconnectedEdgePanics(t *testing.T) {
	t.Parallel()

	r := umlrender.New(umlgraph.NewDiagram(umlgraph.State))
	tassert.Panics(t, func() { r.ConnectionPoints(umlgraph.NewEdge(umlgraph.StateTransitionEdge)) })
}

func TestArrowhead(t *testing.T) {
	t.Parallel()

	pts := umlrender.TriangleArrowhead.Points(geo.NewPoint(0, 0), geo.NewPoint(100, 0))
	assert.Equal(t, 3, len(pts))
	assert.Equal(t, geo.NewPoint(100, 0), pts[1])
	tassert.InDelta(t, 100-10*0.8660254, pts[0].X, 0.001)
	tassert.InDelta(t, -5, pts[0].Y, 0.001)
	tassert.InDelta(t, 5, pts[2].Y, 0.001)

	assert.Equal(t, 0, len(umlrender.NoArrowhead.Points(geo.NewPoint(0, 0), geo.NewPoint(100, 0))))
	assert.Equal(t, 0, len(umlrender.VArrowhead.Points(geo.NewPoint(1, 1), geo.NewPoint(1, 1))))
	assert.String(t, "triangle", umlrender.TriangleArrowhead.String())
}
