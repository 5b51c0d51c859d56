package geo

import "fmt"

// Line is a directed straight connection, Point1 being where it starts.
type Line struct {
	Point1 Point `json:"point1"`
	Point2 Point `json:"point2"`
}

func NewLine(p1, p2 Point) Line {
	return Line{Point1: p1, Point2: p2}
}

func (l Line) Length() float64 {
	return l.Point1.Distance(l.Point2)
}

func (l Line) Center() Point {
	return l.Point1.Interpolate(l.Point2, 0.5)
}

func (l Line) Bounds() Rectangle {
	return Points{l.Point1, l.Point2}.Bounds()
}

func (l Line) Reverse() Line {
	return NewLine(l.Point2, l.Point1)
}

func (l Line) Direction() Direction {
	return l.Point1.VectorTo(l.Point2)
}

func (l Line) Segment() Segment {
	return NewSegment(l.Point1, l.Point2)
}

func (l Line) ToString() string {
	return fmt.Sprintf("%s -> %s", l.Point1.ToString(), l.Point2.ToString())
}
