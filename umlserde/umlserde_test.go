package umlserde_test

import (
	"strings"
	"testing"

	tassert "github.com/stretchr/testify/assert"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/mapfs"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlserde"
)

const sequenceText = `{
  "diagram": "SequenceDiagram",
  "version": "1",
  "nodes": [
    {"id": 7, "type": "ImplicitParameterNode", "x": 0, "y": 0, "name": "a", "children": [8]},
    {"id": 8, "type": "CallNode", "x": 32, "y": 70},
    {"id": 9, "type": "ImplicitParameterNode", "x": 200, "y": 0, "name": "b", "children": [10]},
    {"id": 10, "type": "CallNode", "x": 232, "y": 90},
    {"id": 11, "type": "NoteNode", "x": 400, "y": 10, "name": "hi"}
  ],
  "edges": [
    {"start": 8, "end": 10, "type": "CallEdge", "middleLabel": "run()"},
    {"start": 10, "end": 8, "type": "ReturnEdge"},
    {"start": 11, "end": 9, "type": "NoteEdge", "startLabel": "s", "endLabel": "e"}
  ]
}`

func TestRead(t *testing.T) {
	t.Parallel()

	d, err := umlserde.Read(strings.NewReader(sequenceText))
	assert.Success(t, err)

	assert.Equal(t, umlgraph.Sequence, d.Type())
	roots := d.RootNodes()
	assert.Equal(t, 3, len(roots))
	assert.String(t, "a", roots[0].Name())
	assert.Equal(t, 1, len(roots[0].Children()))
	call := roots[0].Children()[0]
	assert.Equal(t, umlgraph.CallNode, call.Kind())
	assert.Equal(t, geo.NewPoint(32, 70), call.Position())
	assert.True(t, call.Parent() == roots[0])

	edges := d.Edges()
	assert.Equal(t, 3, len(edges))
	assert.Equal(t, umlgraph.CallEdge, edges[0].Kind())
	assert.String(t, "run()", edges[0].MiddleLabel())
	assert.True(t, edges[1].End() == call)
	assert.String(t, "s", edges[2].StartLabel())
	assert.String(t, "e", edges[2].EndLabel())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := umlserde.Read(strings.NewReader(sequenceText))
	assert.Success(t, err)
	written := umlserde.Write(d)

	d2, err := umlserde.Read(strings.NewReader(string(written)))
	assert.Success(t, err)
	// ids are renumbered on write, so the second write is stable
	assert.String(t, string(written), string(umlserde.Write(d2)))

	assert.Equal(t, len(d.Nodes()), len(d2.Nodes()))
	for i, n := range d.Nodes() {
		n2 := d2.Nodes()[i]
		assert.Equal(t, n.Kind(), n2.Kind())
		assert.Equal(t, n.Position(), n2.Position())
		assert.String(t, n.Name(), n2.Name())
		assert.Equal(t, len(n.Children()), len(n2.Children()))
	}
	assert.Equal(t, len(d.Edges()), len(d2.Edges()))
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	d, err := umlserde.Read(strings.NewReader(string(umlserde.Write(umlgraph.NewDiagram(umlgraph.Class)))))
	assert.Success(t, err)
	assert.Equal(t, umlgraph.Class, d.Type())
	assert.Equal(t, 0, len(d.Nodes()))
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		text   string
		expErr string
	}{
		{
			name:   "bad_json",
			text:   `{`,
			expErr: "failed to read diagram",
		},
		{
			name:   "unknown_field",
			text:   `{"diagram": "StateDiagram", "color": "red"}`,
			expErr: `unknown field "color"`,
		},
		{
			name:   "unknown_diagram",
			text:   `{"diagram": "UseCaseDiagram"}`,
			expErr: `unknown diagram type "UseCaseDiagram"`,
		},
		{
			name:   "unknown_node",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "ActorNode"}]}`,
			expErr: `unknown node type "ActorNode"`,
		},
		{
			name:   "foreign_node",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "CallNode"}]}`,
			expErr: "StateDiagram cannot contain CallNode",
		},
		{
			name:   "duplicate_id",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "StateNode"}, {"id": 0, "type": "StateNode"}]}`,
			expErr: "duplicate node id 0",
		},
		{
			name:   "unknown_child",
			text:   `{"diagram": "SequenceDiagram", "nodes": [{"id": 0, "type": "ImplicitParameterNode", "children": [3]}]}`,
			expErr: "unknown node id 3",
		},
		{
			name: "cycle",
			text: `{"diagram": "SequenceDiagram", "nodes": [
				{"id": 0, "type": "CallNode", "children": [1]},
				{"id": 1, "type": "CallNode", "children": [0]}
			]}`,
			expErr: umlgraph.ErrCycle.Error(),
		},
		{
			name: "two_parents",
			text: `{"diagram": "SequenceDiagram", "nodes": [
				{"id": 0, "type": "ImplicitParameterNode", "children": [2]},
				{"id": 1, "type": "ImplicitParameterNode", "children": [2]},
				{"id": 2, "type": "CallNode"}
			]}`,
			expErr: umlgraph.ErrAlreadyParented.Error(),
		},
		{
			name:   "unknown_edge",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "StateNode"}], "edges": [{"start": 0, "end": 0, "type": "Wire"}]}`,
			expErr: `unknown edge type "Wire"`,
		},
		{
			name:   "foreign_edge",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "StateNode"}], "edges": [{"start": 0, "end": 0, "type": "CallEdge"}]}`,
			expErr: "StateDiagram cannot contain CallEdge",
		},
		{
			name: "self_call",
			text: `{"diagram": "SequenceDiagram", "nodes": [
				{"id": 0, "type": "ImplicitParameterNode", "children": [1]},
				{"id": 1, "type": "CallNode", "name": "a"}
			], "edges": [{"start": 1, "end": 1, "type": "CallEdge"}]}`,
			expErr: "edge 0: CallNode(a) calls itself",
		},
		{
			name: "call_cycle",
			text: `{"diagram": "SequenceDiagram", "nodes": [
				{"id": 0, "type": "ImplicitParameterNode", "children": [2]},
				{"id": 1, "type": "ImplicitParameterNode", "children": [3]},
				{"id": 2, "type": "CallNode", "name": "a"},
				{"id": 3, "type": "CallNode", "name": "c"}
			], "edges": [
				{"start": 2, "end": 3, "type": "CallEdge"},
				{"start": 3, "end": 2, "type": "CallEdge"}
			]}`,
			expErr: "edge 1: call from CallNode(c) to CallNode(a) closes a cycle",
		},
		{
			name: "second_caller",
			text: `{"diagram": "SequenceDiagram", "nodes": [
				{"id": 0, "type": "ImplicitParameterNode", "children": [2, 4]},
				{"id": 1, "type": "ImplicitParameterNode", "children": [3]},
				{"id": 2, "type": "CallNode", "name": "a"},
				{"id": 3, "type": "CallNode", "name": "c"},
				{"id": 4, "type": "CallNode", "name": "b"}
			], "edges": [
				{"start": 2, "end": 3, "type": "CallEdge"},
				{"start": 4, "end": 3, "type": "CallEdge"}
			]}`,
			expErr: "edge 1: CallNode(c) already has a caller",
		},
		{
			name:   "dangling_edge",
			text:   `{"diagram": "StateDiagram", "nodes": [{"id": 0, "type": "StateNode"}], "edges": [{"start": 0, "end": 4, "type": "StateTransitionEdge"}]}`,
			expErr: "edge 0: unknown node id 4",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := umlserde.Read(strings.NewReader(tc.text))
			if err == nil {
				t.Fatal("expected error")
			}
			tassert.Contains(t, err.Error(), "failed to read diagram")
			tassert.Contains(t, err.Error(), tc.expErr)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	fs, err := mapfs.New(map[string]string{
		"seq.json": sequenceText,
		"bad.json": `{"diagram": "Nope"}`,
	})
	assert.Success(t, err)
	t.Cleanup(func() {
		err = fs.Close()
		assert.Success(t, err)
	})

	d, err := umlserde.ReadFile(fs, "seq.json")
	assert.Success(t, err)
	assert.Equal(t, 5, len(d.Nodes()))

	_, err = umlserde.ReadFile(fs, "bad.json")
	tassert.Error(t, err)
	tassert.Contains(t, err.Error(), "failed to read bad.json")

	_, err = umlserde.ReadFile(fs, "missing.json")
	tassert.Error(t, err)
	tassert.Contains(t, err.Error(), "failed to read missing.json")
}
