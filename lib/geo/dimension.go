package geo

import (
	"fmt"
	"math"
)

type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewDimension(width, height float64) Dimension {
	return Dimension{Width: width, Height: height}
}

// Include returns the component-wise maximum of d and o.
func (d Dimension) Include(o Dimension) Dimension {
	return NewDimension(math.Max(d.Width, o.Width), math.Max(d.Height, o.Height))
}

func (d Dimension) IsZero() bool {
	return d.Width == 0 && d.Height == 0
}

func (d Dimension) ToString() string {
	return fmt.Sprintf("%.0fx%.0f", d.Width, d.Height)
}
