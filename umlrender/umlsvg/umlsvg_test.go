package umlsvg_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/diff"
	"oss.terrastruct.com/util-go/go2"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/label"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlrender"
	"github.com/umlkit/umlkit/umlrender/umlsvg"
	"github.com/umlkit/umlkit/umlserde"
)

func assertText(t *testing.T, exp, got string) {
	t.Helper()
	ds, err := diff.Strings(exp, got)
	if err != nil {
		t.Fatal(err)
	}
	if ds != "" {
		t.Fatalf("unexpected output:\n%s", ds)
	}
}

func TestRenderNote(t *testing.T) {
	t.Parallel()

	d := umlgraph.NewDiagram(umlgraph.Class)
	n := umlgraph.NewNode(umlgraph.NoteNode)
	n.SetName("hello <world>")
	assert.Success(t, d.AddRootNode(n))

	r := umlrender.New(d, umlrender.WithMeasurer(textmeasure.NewMonospace(5, 16)))
	got := umlsvg.Render(r, nil)

	// "hello <world>" is 13 cells of 5px; 65+14 padding+8 fold = 87 wide.
	exp := `<?xml version="1.0" encoding="utf-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="107" height="60" viewBox="-10 -10 107 60">
<rect x="-10" y="-10" width="107" height="60" style="fill:#ffffff;stroke:none;" />
<path d="M 0 0 L 79 0 L 87 8 L 87 40 L 0 40 L 0 0" style="fill:#e6e699;stroke:#000000;stroke-width:1;shape-rendering:crispEdges;" />
<path d="M 79 0 L 79 8 L 87 8 L 79 0" style="fill:#ffffff;stroke:#000000;stroke-width:1;shape-rendering:crispEdges;" />
<text x="7" y="7" style="font-family:Go;font-size:12px;text-anchor:start;dominant-baseline:hanging;">hello &lt;world&gt;</text>
</svg>
`
	assertText(t, exp, string(got))
}

func TestRenderOpts(t *testing.T) {
	t.Parallel()

	d := umlgraph.NewDiagram(umlgraph.Class)
	assert.Success(t, d.AddRootNode(umlgraph.NewNode(umlgraph.NoteNode)))
	r := umlrender.New(d, umlrender.WithNoteColor("#abcdef"))

	got := string(umlsvg.Render(r, &umlsvg.RenderOpts{
		Pad:        go2.Pointer(int64(0)),
		Background: "#000000",
		NoXMLTag:   go2.Pointer(true),
	}))
	assert.True(t, strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="60" height="40" viewBox="0 0 60 40">`))
	assert.True(t, strings.Contains(got, `style="fill:#000000;stroke:none;"`))
	assert.True(t, strings.Contains(got, `style="fill:#abcdef;`))
}

func TestPainter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := umlsvg.NewPainter(&buf)
	p.StrokePath("M 0 0 L 10 0", true)
	p.StrokePath("M 0 0 L 10 0", false)
	p.DrawText("a\n\nb & c", geo.NewRectangle(0, 0, 40, 48), label.Center, textmeasure.DefaultFont().WithBold(true))

	exp := `<path d="M 0 0 L 10 0" style="fill:none;stroke:#000000;stroke-width:1;stroke-dasharray:4.000000,4.000000;" />
<path d="M 0 0 L 10 0" style="fill:none;stroke:#000000;stroke-width:1;" />
<text x="20" y="0" style="font-family:Go;font-size:12px;font-weight:bold;text-anchor:middle;dominant-baseline:hanging;">a</text>
<text x="20" y="32" style="font-family:Go;font-size:12px;font-weight:bold;text-anchor:middle;dominant-baseline:hanging;">b &amp; c</text>
`
	assertText(t, exp, buf.String())
}

func TestRenderState(t *testing.T) {
	t.Parallel()

	d, err := umlserde.ReadFile(os.DirFS("../testdata"), "state.json")
	assert.Success(t, err)
	r := umlrender.New(d, umlrender.WithMeasurer(textmeasure.NewMonospace(7, 16)))
	got := string(umlsvg.Render(r, nil))

	assert.True(t, strings.HasSuffix(got, "</svg>\n"))
	// Each node outline, edge line and arrowhead ends up in the document.
	assert.True(t, strings.Count(got, "<path ") >= len(d.Nodes())+len(d.Edges()))
	for _, n := range d.Nodes() {
		if n.Name() != "" {
			assert.True(t, strings.Contains(got, n.Name()))
		}
	}
	// Dependency and note edges are dashed, the note edge here among them.
	assert.True(t, strings.Contains(got, "stroke-dasharray"))
}
