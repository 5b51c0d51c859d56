package geo

type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func Sides() []Side {
	return []Side{Top, Right, Bottom, Left}
}

func (s Side) ToString() string {
	switch s {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return ""
	}
}

// SideOf reports which side of r the boundary point p lies on, within 0.001.
// Corners resolve to the first matching side in Top, Right, Bottom, Left order.
func SideOf(r Rectangle, p Point) (Side, bool) {
	const e = 0.001
	inX := PrecisionCompare(p.X, r.X, e) >= 0 && PrecisionCompare(p.X, r.MaxX(), e) <= 0
	inY := PrecisionCompare(p.Y, r.Y, e) >= 0 && PrecisionCompare(p.Y, r.MaxY(), e) <= 0
	switch {
	case inX && PrecisionCompare(p.Y, r.Y, e) == 0:
		return Top, true
	case inY && PrecisionCompare(p.X, r.MaxX(), e) == 0:
		return Right, true
	case inX && PrecisionCompare(p.Y, r.MaxY(), e) == 0:
		return Bottom, true
	case inY && PrecisionCompare(p.X, r.X, e) == 0:
		return Left, true
	}
	return Top, false
}
