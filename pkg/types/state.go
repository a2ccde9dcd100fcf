package types

// AppState is the whole persisted application state: the ordered session list
// (insertion order is display order, most recently created first), the ID of
// the current session, the global loading flag, and the selected assistant
// model identifier.
//
// Invariants maintained by the session store: the session list is never empty,
// and CurrentSessionID always names a session in the list.
type AppState struct {
	Sessions         []ChatSession `json:"sessions"`
	CurrentSessionID string        `json:"currentSessionId"`
	IsLoading        bool          `json:"isLoading"`
	SelectedModel    string        `json:"selectedModel"`
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	c := s
	c.Sessions = make([]ChatSession, len(s.Sessions))
	for i, sess := range s.Sessions {
		c.Sessions[i] = sess.Clone()
	}
	return c
}

// Session returns a deep copy of the session with the given ID, or false if
// no such session exists.
func (s AppState) Session(id string) (ChatSession, bool) {
	for _, sess := range s.Sessions {
		if sess.ID == id {
			return sess.Clone(), true
		}
	}
	return ChatSession{}, false
}
