package main

import (
	"fmt"

	"github.com/umlkit/umlkit/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [flags] bounds file.json
  %[1]s [flags] check file.json --type StateTransitionEdge --from x,y --to x,y [--out file.json]
  %[1]s [flags] render file.json [file.svg]

%[1]s computes the geometry of UML diagrams, validates edges and renders them to SVG.
Use - to read the diagram from stdin or write to stdout.

Subcommands:
  %[1]s bounds - Print the bounds of every node and edge as JSON
  %[1]s check - Print whether an edge drawn between two points is permitted
  %[1]s render - Render the diagram to SVG
  %[1]s version - Print the version

Flags:
%[2]s`, ms.Name, ms.Opts.Help())
}
