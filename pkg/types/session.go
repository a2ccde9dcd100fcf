package types

import "github.com/google/uuid"

// ChatSession is the aggregate root for one conversation: its ordered message
// log, the current workflow graph, the current file set, a title, and the time
// of the last successful update. A session is the unit of persistence and the
// unit of export.
//
// Nodes, Edges, and Files always hold the last full snapshot returned by the
// assistant for this session. Turns replace them wholesale; nothing merges
// partial updates into them.
type ChatSession struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Messages    []Message      `json:"messages"`
	Nodes       []WorkflowNode `json:"nodes"`
	Edges       []WorkflowEdge `json:"edges"`
	Files       []ProjectFile  `json:"files"`
	LastUpdated Time           `json:"lastUpdated"`
}

// NewSession creates a session with a fresh unique ID, the given title, a
// single seeded assistant greeting, and an empty graph and file set.
func NewSession(title, greeting string) ChatSession {
	return ChatSession{
		ID:          uuid.New().String(),
		Title:       title,
		Messages:    []Message{NewAssistantMessage(greeting)},
		Nodes:       []WorkflowNode{},
		Edges:       []WorkflowEdge{},
		Files:       []ProjectFile{},
		LastUpdated: Now(),
	}
}

// Clone returns a deep copy of the session. Slices are copied so the clone
// can be handed to a reader while the original is being replaced.
func (s ChatSession) Clone() ChatSession {
	c := s
	c.Messages = append([]Message(nil), s.Messages...)
	c.Nodes = append([]WorkflowNode(nil), s.Nodes...)
	c.Edges = append([]WorkflowEdge(nil), s.Edges...)
	c.Files = append([]ProjectFile(nil), s.Files...)
	return c
}
