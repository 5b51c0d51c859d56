package label

import (
	"math"

	"github.com/umlkit/umlkit/lib/geo"
)

// These are % locations where labels will be placed along the connection
const LEFT_LABEL_POSITION = 1.0 / 4.0
const CENTER_LABEL_POSITION = 2.0 / 4.0
const RIGHT_LABEL_POSITION = 3.0 / 4.0

// This is the space between an edge and its outside label
const PADDING = 5

type Position int8

const (
	Unset Position = iota

	OutsideTopLeft
	OutsideTopCenter
	OutsideTopRight

	InsideMiddleLeft
	InsideMiddleCenter
	InsideMiddleRight

	OutsideBottomLeft
	OutsideBottomCenter
	OutsideBottomRight
)

func (position Position) String() string {
	switch position {
	case OutsideTopLeft:
		return "OUTSIDE_TOP_LEFT"
	case OutsideTopCenter:
		return "OUTSIDE_TOP_CENTER"
	case OutsideTopRight:
		return "OUTSIDE_TOP_RIGHT"
	case InsideMiddleLeft:
		return "INSIDE_MIDDLE_LEFT"
	case InsideMiddleCenter:
		return "INSIDE_MIDDLE_CENTER"
	case InsideMiddleRight:
		return "INSIDE_MIDDLE_RIGHT"
	case OutsideBottomLeft:
		return "OUTSIDE_BOTTOM_LEFT"
	case OutsideBottomCenter:
		return "OUTSIDE_BOTTOM_CENTER"
	case OutsideBottomRight:
		return "OUTSIDE_BOTTOM_RIGHT"
	default:
		return ""
	}
}

func (position Position) fraction() float64 {
	switch position {
	case OutsideTopLeft, InsideMiddleLeft, OutsideBottomLeft:
		return LEFT_LABEL_POSITION
	case OutsideTopRight, InsideMiddleRight, OutsideBottomRight:
		return RIGHT_LABEL_POSITION
	default:
		return CENTER_LABEL_POSITION
	}
}

// GetPointOnLine returns the top left point of a width x height label placed at
// position along the straight line l.
//
// Outside labels are pushed away from the line along its normal: Top labels end
// up above a left to right line, Bottom labels below it.
//
//	┌────────────────────┐    ┬
//	│       label        │    │ label height
//	└────────────────────┘    ┴ ┬
//	                            │ padding
//	────────────line──────────  ┴
func (position Position) GetPointOnLine(l geo.Line, strokeWidth, width, height float64) geo.Point {
	base := l.Point1.Interpolate(l.Point2, position.fraction())

	var labelCenter geo.Point
	switch position {
	case InsideMiddleLeft, InsideMiddleCenter, InsideMiddleRight, Unset:
		labelCenter = base
	default:
		normal := l.Direction().Unit().Normal()
		if normal.IsZero() {
			normal = geo.Direction{DX: 0, DY: 1}
		}
		switch position {
		case OutsideTopLeft, OutsideTopCenter, OutsideTopRight:
			normal = normal.Scale(-1)
		}
		offsetX := strokeWidth/2 + float64(PADDING) + width/2
		offsetY := strokeWidth/2 + float64(PADDING) + height/2
		labelCenter = geo.NewPoint(base.X+normal.DX*offsetX, base.Y+normal.DY*offsetY)
	}
	// convert from center to top left
	return geo.NewPoint(
		chopPrecision(labelCenter.X-width/2),
		chopPrecision(labelCenter.Y-height/2),
	)
}

// TODO probably use math.Big
func chopPrecision(f float64) float64 {
	// bring down to float32 precision before rounding for consistency across architectures
	return math.Round(float64(float32(f*10000))) / 10000
}
