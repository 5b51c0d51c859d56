package style

import (
	"fmt"

	"github.com/umlkit/umlkit/lib/svg"
)

const DASH_GAP = 4

// ShapeStyle returns the inline style of a stroked outline.
func ShapeStyle(strokeWidth int, dashed bool) string {
	out := ""

	out += fmt.Sprintf(`stroke-width:%d;`, strokeWidth)
	if dashed {
		dashSize, gapSize := svg.GetStrokeDashAttributes(float64(strokeWidth), DASH_GAP)
		out += fmt.Sprintf(`stroke-dasharray:%f,%f;`, dashSize, gapSize)
	}

	return out
}

// CrispEdges turns antialiasing off, for outlines that have to line up on the pixel grid.
func CrispEdges(sharp bool) string {
	if sharp {
		return `shape-rendering:crispEdges;`
	}
	return ""
}
