package types

// NodeType classifies a workflow node. Unknown values are tolerated; consumers
// that need a concrete type (the export palette, for instance) fall back to a
// default rather than rejecting the node.
type NodeType string

const (
	NodeConcept  NodeType = "concept"
	NodeTask     NodeType = "task"
	NodeQuestion NodeType = "question"
	NodeOutput   NodeType = "output"
)

// Valid reports whether t is one of the four known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeConcept, NodeTask, NodeQuestion, NodeOutput:
		return true
	}
	return false
}

// WorkflowNode is a labeled point in a session's concept graph. The ID is
// opaque and assigned by the assistant; x/y are layout coordinates with no
// enforced bounds. The node set is replaced wholesale on every turn.
type WorkflowNode struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        NodeType `json:"type"`
	Description string   `json:"description"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
}

// WorkflowEdge is a directed, optionally labeled relation between two nodes.
//
// Source and target should reference node IDs in the same session, but that is
// not enforced here: a turn may replace the node set and leave an edge
// dangling. Consumers that render or export the graph filter those out.
type WorkflowEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}
