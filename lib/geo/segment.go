package geo

import (
	"fmt"
)

type Intersectable interface {
	Intersections(segment Segment) []Point
}

type Segment struct {
	Start Point
	End   Point
}

func NewSegment(from, to Point) Segment {
	return Segment{from, to}
}

func (segment Segment) Intersects(otherSegment Segment) bool {
	_, ok := IntersectionPoint(segment.Start, segment.End, otherSegment.Start, otherSegment.End)
	return ok
}

//nolint:unused
func (s Segment) ToString() string {
	return fmt.Sprintf("%v -> %v", s.Start.ToString(), s.End.ToString())
}

func (segment Segment) Intersections(otherSegment Segment) []Point {
	point, ok := IntersectionPoint(segment.Start, segment.End, otherSegment.Start, otherSegment.End)
	if !ok {
		return nil
	}
	return []Point{point}
}

func (segment Segment) Length() float64 {
	return EuclideanDistance(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
}
