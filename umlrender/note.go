package umlrender

import (
	"math"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/svg"
	"github.com/umlkit/umlkit/umlgraph"
)

const (
	NOTE_DEFAULT_WIDTH  = 60
	NOTE_DEFAULT_HEIGHT = 40
	NOTE_FOLD_LENGTH    = 8
)

// The note grows to fit its padded text plus room for the fold.
func (r *Renderer) noteBounds(n *umlgraph.Node) geo.Rectangle {
	text := r.textBox(n.Name(), r.font, label.Padded)
	return geo.NewRectangleAt(n.Position(), geo.NewDimension(
		math.Max(text.Width+NOTE_FOLD_LENGTH, NOTE_DEFAULT_WIDTH),
		math.Max(text.Height, NOTE_DEFAULT_HEIGHT),
	))
}

// noteOutline returns the path of the note body, its top right corner cut by
// the fold, and the path of the fold triangle.
//
//	(x,y)──────────┐(maxX-8,y)
//	│              │╲
//	│              └─┐(maxX,y+8)
//	│                │
//	└────────────────┘(maxX,maxY)
func noteOutline(b geo.Rectangle) (outline, fold string) {
	pc := svg.NewSVGPathContext(geo.Point{}, 1, 1)
	pc.StartAt(b.TopLeft())
	pc.L(false, b.MaxX()-NOTE_FOLD_LENGTH, b.Y)
	pc.L(false, b.MaxX(), b.Y+NOTE_FOLD_LENGTH)
	pc.L(false, b.MaxX(), b.MaxY())
	pc.L(false, b.X, b.MaxY())
	pc.L(false, b.X, b.Y)
	outline = pc.PathData()

	pc = svg.NewSVGPathContext(geo.Point{}, 1, 1)
	pc.StartAt(geo.NewPoint(b.MaxX()-NOTE_FOLD_LENGTH, b.Y))
	pc.L(false, b.MaxX()-NOTE_FOLD_LENGTH, b.Y+NOTE_FOLD_LENGTH)
	pc.L(false, b.MaxX(), b.Y+NOTE_FOLD_LENGTH)
	pc.L(false, b.MaxX()-NOTE_FOLD_LENGTH, b.Y)
	fold = pc.PathData()
	return outline, fold
}

func (r *Renderer) drawNote(p Painter, n *umlgraph.Node) {
	b := r.intrinsicBounds(n)
	outline, fold := noteOutline(b)
	p.StrokeAndFillPath(outline, r.noteColor, true)
	p.StrokeAndFillPath(fold, color.White, true)
	r.drawText(p, n.Name(), b, label.TopLeft)
}
