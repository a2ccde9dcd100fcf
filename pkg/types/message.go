// Package types defines the project file model shared across the Architect
// application: chat messages, workflow graphs, project files, and the
// session aggregates that own them.
//
// Everything in this package is plain data. Aggregates are mutated by
// building a replacement value (see Clone) rather than editing in place, so
// a reader holding a snapshot never observes a half-applied update.
package types

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Time is a wall-clock timestamp persisted as integer milliseconds since the
// Unix epoch, matching the stored session format.
type Time int64

// Now returns the current time as a millisecond timestamp.
func Now() Time {
	return Time(time.Now().UnixMilli())
}

// Time converts the timestamp back to a time.Time.
func (t Time) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// Message is a single entry in a session's chat log. Messages are immutable
// once created and are only ever appended to the log.
type Message struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp Time   `json:"timestamp"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: Now()}
}

// NewAssistantMessage creates an assistant message stamped with the current time.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: Now()}
}
