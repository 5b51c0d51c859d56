// Package umlsvg paints diagrams as SVG documents.
package umlsvg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/svg"
	"github.com/umlkit/umlkit/lib/svg/style"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlrender"
)

const (
	DEFAULT_PADDING = 10

	xmlTag = `<?xml version="1.0" encoding="utf-8"?>`
)

type RenderOpts struct {
	Pad        *int64
	Background string
	NoXMLTag   *bool
}

// Painter writes one SVG element per painted path or text line.
type Painter struct {
	buf *bytes.Buffer
}

var _ umlrender.Painter = (*Painter)(nil)

func NewPainter(buf *bytes.Buffer) *Painter {
	return &Painter{buf: buf}
}

func (p *Painter) StrokeAndFillPath(path, fill string, sharp bool) {
	fmt.Fprintf(p.buf, `<path d="%s" style="fill:%s;stroke:%s;%s%s" />`+"\n",
		path, fill, color.Black,
		style.ShapeStyle(umlrender.STROKE_WIDTH, false),
		style.CrispEdges(sharp),
	)
}

func (p *Painter) StrokePath(path string, dashed bool) {
	fmt.Fprintf(p.buf, `<path d="%s" style="fill:%s;stroke:%s;%s" />`+"\n",
		path, color.None, color.Black,
		style.ShapeStyle(umlrender.STROKE_WIDTH, dashed),
	)
}

// DrawText writes a text element per line. Lines share the height of box evenly
// and hang from their top edge.
func (p *Painter) DrawText(text string, box geo.Rectangle, align label.Alignment, font textmeasure.Font) {
	lines := strings.Split(text, "\n")
	lineHeight := box.Height / float64(len(lines))

	x := box.X
	anchor := "start"
	switch align {
	case label.TopCenter, label.Center:
		x = box.Center().X
		anchor = "middle"
	case label.TopLeft:
	}

	weight := ""
	if font.Bold {
		weight = "font-weight:bold;"
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		fmt.Fprintf(p.buf, `<text x="%v" y="%v" style="font-family:%s;font-size:%dpx;%stext-anchor:%s;dominant-baseline:hanging;">%s</text>`+"\n",
			geo.RoundDecimals(x), geo.RoundDecimals(box.Y+float64(i)*lineHeight),
			font.Family, font.Size, weight, anchor,
			svg.EscapeText(line),
		)
	}
}

func dimensions(r *umlrender.Renderer, pad int) (left, top, width, height float64) {
	b := r.DiagramBounds()
	p := float64(pad)
	return b.X - p, b.Y - p, b.Width + 2*p, b.Height + 2*p
}

// Render paints every element of the renderer's diagram into a standalone SVG document.
func Render(r *umlrender.Renderer, opts *RenderOpts) []byte {
	if opts == nil {
		opts = &RenderOpts{}
	}
	pad := DEFAULT_PADDING
	if opts.Pad != nil {
		pad = int(*opts.Pad)
	}
	background := color.White
	if opts.Background != color.Empty {
		background = opts.Background
	}

	left, top, width, height := dimensions(r, pad)

	buf := &bytes.Buffer{}
	if opts.NoXMLTag == nil || !*opts.NoXMLTag {
		fmt.Fprintln(buf, xmlTag)
	}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%v" height="%v" viewBox="%v %v %v %v">`+"\n",
		width, height, left, top, width, height,
	)
	fmt.Fprintf(buf, `<rect x="%v" y="%v" width="%v" height="%v" style="fill:%s;stroke:%s;" />`+"\n",
		left, top, width, height, background, color.None,
	)
	r.Draw(NewPainter(buf))
	fmt.Fprint(buf, "</svg>\n")
	return buf.Bytes()
}
