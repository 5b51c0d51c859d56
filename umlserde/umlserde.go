// Package umlserde reads and writes diagrams as JSON.
//
//	{
//	  "diagram": "StateDiagram",
//	  "version": "1",
//	  "nodes": [{"id": 0, "type": "StateNode", "x": 10, "y": 10, "name": "S1", "children": []}],
//	  "edges": [{"start": 0, "end": 0, "type": "StateTransitionEdge", "middleLabel": "self"}]
//	}
//
// Every node, children included, is listed once in nodes. A node not listed as
// the child of another is a root.
package umlserde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xjson"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/umlgraph"
)

const FORMAT_VERSION = "1"

type serializedDiagram struct {
	Diagram string           `json:"diagram"`
	Version string           `json:"version"`
	Nodes   []serializedNode `json:"nodes"`
	Edges   []serializedEdge `json:"edges"`
}

type serializedNode struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Name     string  `json:"name,omitempty"`
	Children []int   `json:"children,omitempty"`
}

type serializedEdge struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Type        string `json:"type"`
	StartLabel  string `json:"startLabel,omitempty"`
	MiddleLabel string `json:"middleLabel,omitempty"`
	EndLabel    string `json:"endLabel,omitempty"`
}

func ReadFile(fsys fs.FS, path string) (_ *umlgraph.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to read %s", path)

	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(b))
}

func Read(r io.Reader) (_ *umlgraph.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to read diagram")

	var sd serializedDiagram
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sd); err != nil {
		return nil, err
	}
	return sd.diagram()
}

func (sd serializedDiagram) diagram() (*umlgraph.Diagram, error) {
	t, err := umlgraph.ParseType(sd.Diagram)
	if err != nil {
		return nil, err
	}
	d := umlgraph.NewDiagram(t)

	nodes := make(map[int]*umlgraph.Node, len(sd.Nodes))
	for _, sn := range sd.Nodes {
		kind, err := umlgraph.ParseNodeKind(sn.Type)
		if err != nil {
			return nil, err
		}
		if !t.AllowsNode(kind) {
			return nil, fmt.Errorf("%v cannot contain %v", t, kind)
		}
		if _, ok := nodes[sn.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %d", sn.ID)
		}
		n := umlgraph.NewNode(kind)
		n.MoveTo(geo.NewPoint(sn.X, sn.Y))
		n.SetName(sn.Name)
		nodes[sn.ID] = n
	}

	lookup := func(id int) (*umlgraph.Node, error) {
		n, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("unknown node id %d", id)
		}
		return n, nil
	}
	for _, sn := range sd.Nodes {
		for _, id := range sn.Children {
			c, err := lookup(id)
			if err != nil {
				return nil, err
			}
			if err := nodes[sn.ID].AddChild(c); err != nil {
				return nil, err
			}
		}
	}
	for _, sn := range sd.Nodes {
		n := nodes[sn.ID]
		if n.Parent() == nil {
			if err := d.AddRootNode(n); err != nil {
				return nil, err
			}
		}
	}

	callers := make(map[*umlgraph.Node]*umlgraph.Node)
	for i, se := range sd.Edges {
		kind, err := umlgraph.ParseEdgeKind(se.Type)
		if err != nil {
			return nil, err
		}
		if !t.AllowsEdge(kind) {
			return nil, fmt.Errorf("%v cannot contain %v", t, kind)
		}
		start, err := lookup(se.Start)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		end, err := lookup(se.End)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if kind == umlgraph.CallEdge {
			if err := checkCall(callers, start, end); err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
		}
		e := umlgraph.NewEdge(kind)
		e.Connect(start, end)
		if err := d.AddEdge(e); err != nil {
			return nil, err
		}
		e.SetStartLabel(se.StartLabel)
		e.SetMiddleLabel(se.MiddleLabel)
		e.SetEndLabel(se.EndLabel)
	}
	return d, nil
}

// checkCall records the call from start to end in callers. Every call node has
// at most one caller and following callers never leads back to where it began.
func checkCall(callers map[*umlgraph.Node]*umlgraph.Node, start, end *umlgraph.Node) error {
	if start == end {
		return fmt.Errorf("%v calls itself", start)
	}
	if !start.Is(umlgraph.CallNode) || !end.Is(umlgraph.CallNode) {
		return nil
	}
	if _, ok := callers[end]; ok {
		return fmt.Errorf("%v already has a caller", end)
	}
	for n := start; n != nil; n = callers[n] {
		if n == end {
			return fmt.Errorf("call from %v to %v closes a cycle", start, end)
		}
	}
	callers[end] = start
	return nil
}

// Write serializes d. Node ids are assigned depth first, parents before children.
func Write(d *umlgraph.Diagram) []byte {
	sd := serializedDiagram{
		Diagram: d.Type().String(),
		Version: FORMAT_VERSION,
		Nodes:   []serializedNode{},
		Edges:   []serializedEdge{},
	}
	ids := make(map[*umlgraph.Node]int)
	all := d.Nodes()
	for i, n := range all {
		ids[n] = i
	}
	for _, n := range all {
		sn := serializedNode{
			ID:   ids[n],
			Type: n.Kind().String(),
			X:    n.Position().X,
			Y:    n.Position().Y,
			Name: n.Name(),
		}
		for _, c := range n.Children() {
			sn.Children = append(sn.Children, ids[c])
		}
		sd.Nodes = append(sd.Nodes, sn)
	}
	for _, e := range d.Edges() {
		sd.Edges = append(sd.Edges, serializedEdge{
			Start:       ids[e.Start()],
			End:         ids[e.End()],
			Type:        e.Kind().String(),
			StartLabel:  e.StartLabel(),
			MiddleLabel: e.MiddleLabel(),
			EndLabel:    e.EndLabel(),
		})
	}
	return xjson.Marshal(sd)
}
