package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/umlkit/umlkit/lib/geo"
)

// SvgPathContext accumulates SVG path commands. Coordinates passed to the
// uppercase (absolute) variants are relative to TopLeft and scaled by ScaleX and
// ScaleY; lowercase variants move from the current point.
type SvgPathContext struct {
	Path     []geo.Segment
	Commands []string
	Start    geo.Point
	Current  geo.Point
	TopLeft  geo.Point
	ScaleX   float64
	ScaleY   float64
}

// TODO probably use math.Big
func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func NewSVGPathContext(tl geo.Point, sx, sy float64) *SvgPathContext {
	return &SvgPathContext{TopLeft: tl, ScaleX: sx, ScaleY: sy}
}

func (c *SvgPathContext) Relative(base geo.Point, dx, dy float64) geo.Point {
	return geo.NewPoint(chopPrecision(base.X+c.ScaleX*dx), chopPrecision(base.Y+c.ScaleY*dy))
}

func (c *SvgPathContext) Absolute(x, y float64) geo.Point {
	return c.Relative(c.TopLeft, x, y)
}

func (c *SvgPathContext) StartAt(p geo.Point) {
	c.Start = p
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p
}

func (c *SvgPathContext) Z() {
	c.Path = append(c.Path, geo.NewSegment(c.Current, c.Start))
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start
}

func (c *SvgPathContext) L(isLowerCase bool, x, y float64) {
	var endPoint geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	c.Path = append(c.Path, geo.NewSegment(c.Current, endPoint))
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint
}

func (c *SvgPathContext) H(isLowerCase bool, x float64) {
	var endPoint geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, 0)
	} else {
		endPoint = c.Absolute(x, 0)
		endPoint.Y = c.Current.Y
	}
	c.Path = append(c.Path, geo.NewSegment(c.Current, endPoint))
	c.Commands = append(c.Commands, fmt.Sprintf("H %v", endPoint.X))
	c.Current = endPoint
}

func (c *SvgPathContext) V(isLowerCase bool, y float64) {
	var endPoint geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, 0, y)
	} else {
		endPoint = c.Absolute(0, y)
		endPoint.X = c.Current.X
	}
	c.Path = append(c.Path, geo.NewSegment(c.Current, endPoint))
	c.Commands = append(c.Commands, fmt.Sprintf("V %v", endPoint.Y))
	c.Current = endPoint
}

// A draws a clockwise elliptical arc of radii rx, ry to (x, y). The chord is
// recorded in Path.
func (c *SvgPathContext) A(isLowerCase bool, rx, ry float64, largeArc bool, x, y float64) {
	var endPoint geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	c.Path = append(c.Path, geo.NewSegment(c.Current, endPoint))
	large := 0
	if largeArc {
		large = 1
	}
	c.Commands = append(c.Commands, fmt.Sprintf("A %v %v 0 %d 1 %v %v",
		chopPrecision(rx*c.ScaleX), chopPrecision(ry*c.ScaleY), large, endPoint.X, endPoint.Y))
	c.Current = endPoint
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}

// Bounds returns the rectangle spanning every point the path went through.
func (c *SvgPathContext) Bounds() geo.Rectangle {
	var ps geo.Points
	for _, s := range c.Path {
		ps = append(ps, s.Start, s.End)
	}
	return ps.Bounds()
}

// GetStrokeDashAttributes returns the dash and gap lengths for a stroke of the
// given width, scaled so thicker strokes get longer dashes.
func GetStrokeDashAttributes(strokeWidth, dashGapSize float64) (float64, float64) {
	// as the stroke width gets thicker, the dash gap gets smaller
	scale := math.Log10(-0.6*strokeWidth+10.6)*0.5 + 0.5
	scaledDashSize := strokeWidth * dashGapSize
	scaledGapSize := scale * scaledDashSize
	return scaledDashSize, scaledGapSize
}
