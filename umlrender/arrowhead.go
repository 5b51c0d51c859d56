package umlrender

import (
	"fmt"
	"math"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/umlgraph"
)

type Arrowhead int

const (
	NoArrowhead Arrowhead = iota
	VArrowhead
	TriangleArrowhead
)

const (
	ARROW_LENGTH = 10
	ARROW_ANGLE  = math.Pi / 6
)

func (a Arrowhead) String() string {
	switch a {
	case NoArrowhead:
		return "none"
	case VArrowhead:
		return "v"
	case TriangleArrowhead:
		return "triangle"
	default:
		return fmt.Sprintf("Arrowhead(%d)", int(a))
	}
}

// EndArrowhead returns the arrowhead drawn where edges of kind k end.
func EndArrowhead(k umlgraph.EdgeKind) Arrowhead {
	switch k {
	case umlgraph.StateTransitionEdge, umlgraph.DependencyEdge, umlgraph.ReturnEdge:
		return VArrowhead
	case umlgraph.GeneralizationEdge, umlgraph.CallEdge:
		return TriangleArrowhead
	case umlgraph.NoteEdge:
		return NoArrowhead
	default:
		panic(fmt.Sprintf("umlrender: no arrowhead for %v", k))
	}
}

// Points returns the polyline of an arrowhead at tip for a line coming from from:
// the two barbs with the tip in between. A triangle closes the polyline.
//
//	left
//	   ╲
//	────▶ tip
//	   ╱
//	right
func (a Arrowhead) Points(from, tip geo.Point) geo.Points {
	if a == NoArrowhead {
		return nil
	}
	back := tip.VectorTo(from).Unit()
	if back.IsZero() {
		return nil
	}
	barb := func(angle float64) geo.Point {
		cos, sin := math.Cos(angle), math.Sin(angle)
		d := geo.Direction{
			DX: back.DX*cos - back.DY*sin,
			DY: back.DX*sin + back.DY*cos,
		}
		return geo.NewPoint(
			geo.RoundDecimals(tip.X+d.DX*ARROW_LENGTH),
			geo.RoundDecimals(tip.Y+d.DY*ARROW_LENGTH),
		)
	}
	return geo.Points{barb(ARROW_ANGLE), tip, barb(-ARROW_ANGLE)}
}
