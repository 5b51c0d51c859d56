package main

import (
	"context"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xjson"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/xmain"
	"github.com/umlkit/umlkit/umlgraph"
)

type boundsOutput struct {
	Diagram geo.Rectangle `json:"diagram"`
	Nodes   []nodeBounds  `json:"nodes"`
	Edges   []edgeBounds  `json:"edges"`
}

// Node ids are the ids umlserde.Write assigns: the index in depth-first order.
type nodeBounds struct {
	ID     int           `json:"id"`
	Type   string        `json:"type"`
	Name   string        `json:"name,omitempty"`
	Bounds geo.Rectangle `json:"bounds"`
}

type edgeBounds struct {
	Start            int           `json:"start"`
	End              int           `json:"end"`
	Type             string        `json:"type"`
	Bounds           geo.Rectangle `json:"bounds"`
	ConnectionPoints geo.Line      `json:"connectionPoints"`
}

func boundsCmd(ctx context.Context, ms *xmain.State, f *flags, inputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to compute bounds of %s", inputPath)

	d, r, err := load(ctx, ms, f, inputPath)
	if err != nil {
		return err
	}

	out := boundsOutput{
		Diagram: r.DiagramBounds(),
		Nodes:   []nodeBounds{},
		Edges:   []edgeBounds{},
	}
	ids := make(map[*umlgraph.Node]int)
	for i, n := range d.Nodes() {
		ids[n] = i
		out.Nodes = append(out.Nodes, nodeBounds{
			ID:     i,
			Type:   n.Kind().String(),
			Name:   n.Name(),
			Bounds: r.Bounds(n),
		})
	}
	for _, e := range d.Edges() {
		out.Edges = append(out.Edges, edgeBounds{
			Start:            ids[e.Start()],
			End:              ids[e.End()],
			Type:             e.Kind().String(),
			Bounds:           r.Bounds(e),
			ConnectionPoints: r.ConnectionPoints(e),
		})
	}

	_, err = ms.Stdout.Write(append(xjson.Marshal(out), '\n'))
	return err
}
