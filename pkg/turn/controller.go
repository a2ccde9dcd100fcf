// Package turn orchestrates one conversation turn: append the user message,
// call the external assistant with full context, and reconcile the returned
// full project state into the session.
//
// The controller is the error boundary for everything reachable from a
// submission. Any failure of the external call, including a malformed
// document, is converted into a single localized assistant error message in
// the chat log; the session's title, graph, and files are left untouched and
// the loading flag is always cleared.
package turn

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/entrhq/architect/pkg/assistant"
	"github.com/entrhq/architect/pkg/i18n"
	"github.com/entrhq/architect/pkg/logging"
	"github.com/entrhq/architect/pkg/session"
	"github.com/entrhq/architect/pkg/types"
)

// ErrEmptyMessage is returned when the submitted user text is empty.
var ErrEmptyMessage = errors.New("turn: message text is empty")

// ErrUnknownSession is returned when the session ID does not exist.
var ErrUnknownSession = errors.New("turn: unknown session")

// ErrTurnInFlight is returned when a turn is already outstanding for the
// session. One turn per session at a time; submissions are rejected rather
// than queued.
var ErrTurnInFlight = errors.New("turn: a turn is already in flight for this session")

// Controller runs turns against an assistant provider and reconciles the
// results into the session store.
type Controller struct {
	store    *session.Store
	provider assistant.Provider
	logger   *logging.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewController creates a controller bound to a store and a provider.
func NewController(store *session.Store, provider assistant.Provider) *Controller {
	logger, _ := logging.NewLogger("turn")
	return &Controller{
		store:    store,
		provider: provider,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Submit runs one turn for the given session. The user message is appended
// and the loading flag raised before the assistant call; afterwards either
// the full project state is replaced (success) or a localized error message
// is appended (failure). The returned error reports what went wrong for
// logging purposes; by the time Submit returns, the session has already
// been reconciled and the loading flag cleared.
func (c *Controller) Submit(ctx context.Context, sessionID, userText string) error {
	if strings.TrimSpace(userText) == "" {
		return ErrEmptyMessage
	}
	if _, ok := c.store.Session(sessionID); !ok {
		return ErrUnknownSession
	}
	if !c.acquire(sessionID) {
		return ErrTurnInFlight
	}
	defer c.release(sessionID)

	c.store.AppendMessage(sessionID, types.NewUserMessage(userText))
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	sess, ok := c.store.Session(sessionID)
	if !ok {
		// Deleted between the check and the call; nothing left to reconcile.
		return ErrUnknownSession
	}

	nodeLabels, filenames := assistant.ContextFor(sess)
	resp, err := c.provider.GenerateProject(ctx, assistant.Request{
		History:    sess.Messages,
		NodeLabels: nodeLabels,
		Filenames:  filenames,
		Model:      c.store.SelectedModel(),
	})
	if err != nil {
		c.logger.Errorf("turn failed for session %s: %v", sessionID, err)
		c.store.AppendMessage(sessionID, types.NewAssistantMessage(i18n.T("error")))
		return err
	}

	c.store.ApplyTurn(sessionID,
		types.NewAssistantMessage(resp.AssistantMessage),
		resp.ProjectTitle, resp.Nodes, resp.Edges, resp.Files)
	c.logger.Infof("turn completed for session %s: %d nodes, %d edges, %d files",
		sessionID, len(resp.Nodes), len(resp.Edges), len(resp.Files))
	return nil
}

// InFlight reports whether a turn is outstanding for the session.
func (c *Controller) InFlight(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[sessionID]
	return ok
}

func (c *Controller) acquire(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inFlight[sessionID]; ok {
		return false
	}
	c.inFlight[sessionID] = struct{}{}
	return true
}

func (c *Controller) release(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, sessionID)
}
