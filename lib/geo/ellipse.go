package geo

import "math"

type Ellipse struct {
	Center Point
	Rx     float64
	Ry     float64
}

func NewEllipse(center Point, rx, ry float64) Ellipse {
	return Ellipse{
		Center: center,
		Rx:     rx,
		Ry:     ry,
	}
}

// InscribedEllipse is the largest ellipse fitting in r.
func InscribedEllipse(r Rectangle) Ellipse {
	return NewEllipse(r.Center(), r.Width/2, r.Height/2)
}

// BoundaryPointToward returns where the ray from the center toward p crosses the ellipse.
// ellipse equation: (x-cx)^2/rx^2 + (y-cy)^2/ry^2 = 1
// substituting (x, y) = c + t(dx, dy) gives t = 1/sqrt(dx^2/rx^2 + dy^2/ry^2)
func (e Ellipse) BoundaryPointToward(p Point) Point {
	dx := p.X - e.Center.X
	dy := p.Y - e.Center.Y
	if (dx == 0 && dy == 0) || e.Rx <= 0 || e.Ry <= 0 {
		return e.Center
	}
	t := 1 / math.Sqrt(dx*dx/(e.Rx*e.Rx)+dy*dy/(e.Ry*e.Ry))
	return NewPoint(RoundDecimals(e.Center.X+dx*t), RoundDecimals(e.Center.Y+dy*t))
}

func (e Ellipse) Bounds() Rectangle {
	return NewRectangle(e.Center.X-e.Rx, e.Center.Y-e.Ry, 2*e.Rx, 2*e.Ry)
}
