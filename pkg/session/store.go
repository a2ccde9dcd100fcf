// Package session owns the application state: the ordered list of chat
// sessions, the current-session pointer, the global loading flag, and the
// selected assistant model.
//
// The store guarantees two invariants: exactly one session is current at all
// times, and the session list is never empty (deleting the last remaining
// session is rejected). Every accepted mutation is serialized to durable
// storage under a fixed key; on construction the store attempts to restore
// from that key and falls back to a freshly seeded single session when the
// saved state is absent or corrupt.
//
// All reads return deep copies and all mutations build a replacement state
// before swapping it in, so a snapshot handed to a renderer never observes a
// partially applied update.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/entrhq/architect/pkg/i18n"
	"github.com/entrhq/architect/pkg/logging"
	"github.com/entrhq/architect/pkg/types"
)

// StorageKey is the fixed key the application state is persisted under.
const StorageKey = "architect_sessions"

// DefaultModel is the assistant model selected for a fresh state.
const DefaultModel = "gemini-2.5-flash"

// ErrLastSession is returned when a delete would leave zero sessions.
var ErrLastSession = errors.New("session: cannot delete the last remaining session")

// Store owns the AppState and persists it after every mutation.
type Store struct {
	mu      sync.RWMutex
	state   types.AppState
	storage Storage
	logger  *logging.Logger
	model   string
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultModel overrides the model selected when seeding a fresh state.
func WithDefaultModel(model string) Option {
	return func(s *Store) {
		s.model = model
	}
}

// NewStore creates a store backed by the given storage. Prior state is
// restored from StorageKey when present and readable; a corrupt or invalid
// saved state is logged and discarded, never surfaced as an error.
func NewStore(storage Storage, opts ...Option) *Store {
	logger, _ := logging.NewLogger("session")

	s := &Store{
		storage: storage,
		logger:  logger,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = s.restore()
	return s
}

// restore loads the persisted state, falling back to a seeded one.
func (s *Store) restore() types.AppState {
	raw, found, err := s.storage.Load(StorageKey)
	if err != nil {
		s.logger.Warnf("failed to load saved state, starting fresh: %v", err)
		return s.seed()
	}
	if !found {
		return s.seed()
	}

	var state types.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warnf("saved state is corrupt, starting fresh: %v", err)
		return s.seed()
	}
	if len(state.Sessions) == 0 {
		s.logger.Warnf("saved state has no sessions, starting fresh")
		return s.seed()
	}

	// Repair a current pointer that no longer names a session in the list.
	if _, ok := state.Session(state.CurrentSessionID); !ok {
		state.CurrentSessionID = state.Sessions[0].ID
	}
	// A crash mid-turn must not restore into a stuck loading state.
	state.IsLoading = false
	if state.SelectedModel == "" {
		state.SelectedModel = s.model
	}
	return state
}

// seed builds a fresh state with one greeted session.
func (s *Store) seed() types.AppState {
	sess := types.NewSession(i18n.T("newWorkflow"), i18n.T("assistantGreeting"))
	return types.AppState{
		Sessions:         []types.ChatSession{sess},
		CurrentSessionID: sess.ID,
		IsLoading:        false,
		SelectedModel:    s.model,
	}
}

// persistLocked writes the current state to storage. Persistence failures are
// logged, not propagated: the in-memory state is already authoritative and a
// user action must not fail because the disk write did.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Errorf("failed to serialize state: %v", err)
		return
	}
	if err := s.storage.Save(StorageKey, string(data)); err != nil {
		s.logger.Errorf("failed to persist state: %v", err)
	}
}

// Snapshot returns a deep copy of the whole application state.
func (s *Store) Snapshot() types.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Current returns a deep copy of the current session.
func (s *Store) Current() types.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.state.Session(s.state.CurrentSessionID); ok {
		return sess
	}
	// The invariants make this unreachable, but fall back defensively.
	return s.state.Sessions[0].Clone()
}

// Session returns a deep copy of the session with the given ID.
func (s *Store) Session(id string) (types.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session(id)
}

// IsLoading reports whether a turn is currently in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

// SelectedModel returns the currently selected assistant model identifier.
func (s *Store) SelectedModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedModel
}

// CreateSession inserts a new seeded session at the head of the list and
// makes it current.
func (s *Store) CreateSession() types.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := types.NewSession(i18n.T("newWorkflow"), i18n.T("assistantGreeting"))
	next := s.state.Clone()
	next.Sessions = append([]types.ChatSession{sess}, next.Sessions...)
	next.CurrentSessionID = sess.ID
	s.state = next
	s.persistLocked()
	return sess.Clone()
}

// SelectSession makes the session with the given ID current. Unknown IDs are
// a silent no-op; callers are expected to only pass known IDs.
func (s *Store) SelectSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Session(id); !ok {
		return
	}
	next := s.state.Clone()
	next.CurrentSessionID = id
	s.state = next
	s.persistLocked()
}

// RenameSession replaces the title of the session with the given ID. An empty
// title means the rename was cancelled and nothing changes.
func (s *Store) RenameSession(id, newTitle string) {
	if newTitle == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Sessions {
		if next.Sessions[i].ID == id {
			next.Sessions[i].Title = newTitle
			s.state = next
			s.persistLocked()
			return
		}
	}
}

// DeleteSession removes the session with the given ID. Deleting the current
// session moves the current pointer to the first remaining session. Deleting
// the last remaining session is rejected with ErrLastSession.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make([]types.ChatSession, 0, len(s.state.Sessions))
	for _, sess := range s.state.Sessions {
		if sess.ID != id {
			remaining = append(remaining, sess.Clone())
		}
	}
	if len(remaining) == len(s.state.Sessions) {
		return nil
	}
	if len(remaining) == 0 {
		return ErrLastSession
	}

	next := s.state.Clone()
	next.Sessions = remaining
	if next.CurrentSessionID == id {
		next.CurrentSessionID = remaining[0].ID
	}
	s.state = next
	s.persistLocked()
	return nil
}

// SetModel records the selected assistant model identifier.
func (s *Store) SetModel(model string) {
	if model == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.SelectedModel = model
	s.state = next
	s.persistLocked()
}

// SetLoading sets the global loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.IsLoading = loading
	s.state = next
	s.persistLocked()
}

// AppendMessage appends a message to the log of the session with the given
// ID. Returns false when the session does not exist.
func (s *Store) AppendMessage(sessionID string, msg types.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Sessions {
		if next.Sessions[i].ID == sessionID {
			next.Sessions[i].Messages = append(next.Sessions[i].Messages, msg)
			s.state = next
			s.persistLocked()
			return true
		}
	}
	return false
}

// ApplyTurn reconciles a successful assistant turn into the session: the
// assistant message is appended, the title is replaced when non-empty, and
// nodes, edges, and files are replaced wholesale with the assistant's full
// snapshot. LastUpdated advances to now.
func (s *Store) ApplyTurn(sessionID string, msg types.Message, title string, nodes []types.WorkflowNode, edges []types.WorkflowEdge, files []types.ProjectFile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Sessions {
		if next.Sessions[i].ID != sessionID {
			continue
		}
		sess := &next.Sessions[i]
		sess.Messages = append(sess.Messages, msg)
		if title != "" {
			sess.Title = title
		}
		sess.Nodes = append([]types.WorkflowNode(nil), nodes...)
		sess.Edges = append([]types.WorkflowEdge(nil), edges...)
		sess.Files = append([]types.ProjectFile(nil), files...)
		sess.LastUpdated = types.Now()
		s.state = next
		s.persistLocked()
		return true
	}
	return false
}
