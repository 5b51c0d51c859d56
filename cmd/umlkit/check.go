package main

import (
	"context"
	"fmt"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/umlkit/umlkit/lib/xmain"
	"github.com/umlkit/umlkit/umlbuilder"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlserde"
)

// checkCmd reports whether an edge drawn between two points would be permitted.
// A rejection is an answer, not a failure: the exit code is 0 either way.
func checkCmd(ctx context.Context, ms *xmain.State, f *flags, inputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to check %s", inputPath)

	if *f.edgeType == "" {
		return xmain.UsageErrorf("check requires --type")
	}
	kind, err := umlgraph.ParseEdgeKind(*f.edgeType)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	from, err := parsePoint("from", *f.from)
	if err != nil {
		return err
	}
	to, err := parsePoint("to", *f.to)
	if err != nil {
		return err
	}

	d, r, err := load(ctx, ms, f, inputPath)
	if err != nil {
		return err
	}
	b := umlbuilder.New(d, r)

	start := b.FindNode(from)
	if start == nil {
		return fmt.Errorf("no node at %s", from.ToString())
	}
	end := b.FindNode(to)
	if end == nil {
		return fmt.Errorf("no node at %s", to.ToString())
	}

	edge := umlgraph.NewEdge(kind)
	rejectedBy, ok := b.Check(ctx, edge, start, end, from, to)
	if !ok {
		fmt.Fprintf(ms.Stdout, "rejected by %s\n", rejectedBy)
		return nil
	}
	fmt.Fprintln(ms.Stdout, "permitted")

	if *f.out == "" {
		return nil
	}
	b.AddEdge(ctx, edge, start, end, from, to)
	err = ms.WritePath(*f.out, umlserde.Write(d))
	if err != nil {
		return err
	}
	if *f.out != "-" {
		ms.Log.Success.Printf("added %v to %s", edge, *f.out)
	}
	return nil
}
