package vault

import "github.com/entrhq/architect/pkg/types"

// Canvas node geometry is fixed; the layout tool resizes interactively.
const (
	nodeWidth  = 250
	nodeHeight = 140
)

// Edge sides are fixed constants, not computed from geometry.
const (
	edgeFromSide = "right"
	edgeToSide   = "left"
)

// CanvasNode is one entry of the graph-layout document. File-backed entries
// set File; standalone entries set Text instead.
type CanvasNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Color  string  `json:"color"`
	Type   string  `json:"type"`
	File   string  `json:"file,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// CanvasEdge is one connection of the graph-layout document.
type CanvasEdge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide"`
	Label    string `json:"label,omitempty"`
}

// CanvasDocument is the layout file written at the vault root.
type CanvasDocument struct {
	Nodes []CanvasNode `json:"nodes"`
	Edges []CanvasEdge `json:"edges"`
}

// NodeColor maps a workflow node type to the target tool's palette index.
// The mapping is part of the on-disk contract and must not change.
func NodeColor(t types.NodeType) string {
	switch t {
	case types.NodeConcept:
		return "6" // purple: high level theory
	case types.NodeTask:
		return "4" // green: validated data/tasks
	case types.NodeQuestion:
		return "3" // yellow: review required
	case types.NodeOutput:
		return "5" // cyan: external info/references
	default:
		return "2" // orange: hypotheses
	}
}
