package geo

import "math"

// Direction is a 2D vector.
type Direction struct {
	DX float64
	DY float64
}

func (d Direction) Length() float64 {
	return math.Sqrt(d.DX*d.DX + d.DY*d.DY)
}

// Unit returns d scaled to length 1, or the zero vector when d has no length.
func (d Direction) Unit() Direction {
	l := d.Length()
	if l == 0 {
		return Direction{}
	}
	return Direction{DX: d.DX / l, DY: d.DY / l}
}

// Normal is d rotated 90 degrees clockwise in screen coordinates (y grows down).
func (d Direction) Normal() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

func (d Direction) Scale(f float64) Direction {
	return Direction{DX: d.DX * f, DY: d.DY * f}
}

func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}
