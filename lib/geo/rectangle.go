package geo

import (
	"fmt"
	"math"
)

// Rectangle is an axis aligned box anchored at its top left corner.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectangleAt(tl Point, d Dimension) Rectangle {
	return NewRectangle(tl.X, tl.Y, d.Width, d.Height)
}

func (r Rectangle) MaxX() float64 {
	return r.X + r.Width
}

func (r Rectangle) MaxY() float64 {
	return r.Y + r.Height
}

func (r Rectangle) TopLeft() Point {
	return NewPoint(r.X, r.Y)
}

func (r Rectangle) Center() Point {
	return NewPoint(r.X+r.Width/2, r.Y+r.Height/2)
}

func (r Rectangle) Dimension() Dimension {
	return NewDimension(r.Width, r.Height)
}

func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return NewRectangle(r.X+dx, r.Y+dy, r.Width, r.Height)
}

// Contains reports whether p is inside r or on its boundary.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.MaxX() && r.Y <= p.Y && p.Y <= r.MaxY()
}

func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.Contains(o.TopLeft()) && r.Contains(NewPoint(o.MaxX(), o.MaxY()))
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return NewRectangle(minX, minY, maxX-minX, maxY-minY)
}

// Include grows r to contain p.
func (r Rectangle) Include(p Point) Rectangle {
	return r.Union(NewRectangle(p.X, p.Y, 0, 0))
}

// Clamp returns the point of r closest to p, p itself when r contains it.
func (r Rectangle) Clamp(p Point) Point {
	return NewPoint(Clamp(p.X, r.X, r.MaxX()), Clamp(p.Y, r.Y, r.MaxY()))
}

// Side returns the boundary segment of r on the given side, in clockwise order.
func (r Rectangle) Side(s Side) Segment {
	tl := r.TopLeft()
	tr := NewPoint(r.MaxX(), r.Y)
	br := NewPoint(r.MaxX(), r.MaxY())
	bl := NewPoint(r.X, r.MaxY())
	switch s {
	case Top:
		return NewSegment(tl, tr)
	case Right:
		return NewSegment(tr, br)
	case Bottom:
		return NewSegment(br, bl)
	case Left:
		return NewSegment(bl, tl)
	default:
		panic(fmt.Sprintf("geo: unknown side %d", s))
	}
}

func (r Rectangle) Intersections(s Segment) []Point {
	pts := []Point{}
	for _, side := range Sides() {
		if p, ok := IntersectionPoint(s.Start, s.End, r.Side(side).Start, r.Side(side).End); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// BoundaryPointToward returns where the ray from the center of r toward p
// leaves r. The center itself is returned when p is the center.
//
//	┌───────────────┐
//	│               │      p
//	│       c───────x──────▶
//	│               │
//	└───────────────┘
func (r Rectangle) BoundaryPointToward(p Point) Point {
	c := r.Center()
	dx := p.X - c.X
	dy := p.Y - c.Y
	if dx == 0 && dy == 0 {
		return c
	}
	tx := math.Inf(1)
	if dx != 0 {
		tx = (r.Width / 2) / math.Abs(dx)
	}
	ty := math.Inf(1)
	if dy != 0 {
		ty = (r.Height / 2) / math.Abs(dy)
	}
	t := math.Min(tx, ty)
	return NewPoint(RoundDecimals(c.X+dx*t), RoundDecimals(c.Y+dy*t))
}

// NearestBoundaryPoint returns the point on the boundary of r closest to p.
func (r Rectangle) NearestBoundaryPoint(p Point) Point {
	q := r.Clamp(p)
	if !r.Contains(p) {
		return q
	}
	best := NewPoint(q.X, r.Y)
	bestD := q.Y - r.Y
	if d := r.MaxX() - q.X; d < bestD {
		best, bestD = NewPoint(r.MaxX(), q.Y), d
	}
	if d := r.MaxY() - q.Y; d < bestD {
		best, bestD = NewPoint(q.X, r.MaxY()), d
	}
	if d := q.X - r.X; d < bestD {
		best = NewPoint(r.X, q.Y)
	}
	return best
}

func (r Rectangle) ToString() string {
	return fmt.Sprintf("{X: %.0f, Y: %.0f, Width: %.0f, Height: %.0f}", r.X, r.Y, r.Width, r.Height)
}
