package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/architect/pkg/types"
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	return NewStore(storage), storage
}

func TestNewStoreSeedsSingleSession(t *testing.T) {
	store, _ := newTestStore(t)

	state := store.Snapshot()
	require.Len(t, state.Sessions, 1)
	assert.Equal(t, state.Sessions[0].ID, state.CurrentSessionID)
	assert.False(t, state.IsLoading)
	assert.Equal(t, DefaultModel, state.SelectedModel)
	require.Len(t, state.Sessions[0].Messages, 1)
	assert.Equal(t, types.RoleAssistant, state.Sessions[0].Messages[0].Role)
}

func TestNewStoreRestoresPersistedState(t *testing.T) {
	storage := NewMemoryStorage()
	first := NewStore(storage)
	created := first.CreateSession()
	first.RenameSession(created.ID, "My Project")
	first.SetModel("gemini-3-flash-preview")

	second := NewStore(storage)
	state := second.Snapshot()
	require.Len(t, state.Sessions, 2)
	assert.Equal(t, created.ID, state.CurrentSessionID)
	assert.Equal(t, "My Project", state.Sessions[0].Title)
	assert.Equal(t, "gemini-3-flash-preview", state.SelectedModel)
}

func TestNewStoreRecoversFromCorruptState(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(StorageKey, "{not json"))

	store := NewStore(storage)
	state := store.Snapshot()
	require.Len(t, state.Sessions, 1)
	assert.Equal(t, state.Sessions[0].ID, state.CurrentSessionID)
}

func TestNewStoreRepairsInvalidState(t *testing.T) {
	t.Run("empty session list", func(t *testing.T) {
		storage := NewMemoryStorage()
		raw, _ := json.Marshal(types.AppState{Sessions: []types.ChatSession{}})
		require.NoError(t, storage.Save(StorageKey, string(raw)))

		store := NewStore(storage)
		assert.Len(t, store.Snapshot().Sessions, 1)
	})

	t.Run("dangling current pointer", func(t *testing.T) {
		storage := NewMemoryStorage()
		sess := types.NewSession("t", "g")
		raw, _ := json.Marshal(types.AppState{
			Sessions:         []types.ChatSession{sess},
			CurrentSessionID: "gone",
			SelectedModel:    DefaultModel,
		})
		require.NoError(t, storage.Save(StorageKey, string(raw)))

		store := NewStore(storage)
		assert.Equal(t, sess.ID, store.Snapshot().CurrentSessionID)
	})

	t.Run("stuck loading flag cleared", func(t *testing.T) {
		storage := NewMemoryStorage()
		sess := types.NewSession("t", "g")
		raw, _ := json.Marshal(types.AppState{
			Sessions:         []types.ChatSession{sess},
			CurrentSessionID: sess.ID,
			IsLoading:        true,
			SelectedModel:    DefaultModel,
		})
		require.NoError(t, storage.Save(StorageKey, string(raw)))

		store := NewStore(storage)
		assert.False(t, store.IsLoading())
	})
}

func TestCreateSessionPrependsAndSelects(t *testing.T) {
	store, _ := newTestStore(t)
	original := store.Current()

	created := store.CreateSession()
	state := store.Snapshot()

	require.Len(t, state.Sessions, 2)
	assert.Equal(t, created.ID, state.Sessions[0].ID, "new sessions go to the head of the list")
	assert.Equal(t, original.ID, state.Sessions[1].ID)
	assert.Equal(t, created.ID, state.CurrentSessionID)
}

func TestSelectSession(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.Current()
	store.CreateSession()

	store.SelectSession(first.ID)
	assert.Equal(t, first.ID, store.Current().ID)

	// Unknown IDs are a silent no-op.
	store.SelectSession("does-not-exist")
	assert.Equal(t, first.ID, store.Current().ID)
}

func TestRenameSession(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.Current()

	store.RenameSession(sess.ID, "Renamed")
	assert.Equal(t, "Renamed", store.Current().Title)

	// Empty title means the rename was cancelled.
	store.RenameSession(sess.ID, "")
	assert.Equal(t, "Renamed", store.Current().Title)
}

func TestDeleteSession(t *testing.T) {
	t.Run("refuses to delete the last session", func(t *testing.T) {
		store, _ := newTestStore(t)
		sess := store.Current()

		err := store.DeleteSession(sess.ID)
		assert.ErrorIs(t, err, ErrLastSession)
		assert.Len(t, store.Snapshot().Sessions, 1)
	})

	t.Run("deleting the current session reassigns current", func(t *testing.T) {
		store, _ := newTestStore(t)
		second := store.CreateSession()

		require.NoError(t, store.DeleteSession(second.ID))
		state := store.Snapshot()
		require.Len(t, state.Sessions, 1)
		assert.Equal(t, state.Sessions[0].ID, state.CurrentSessionID)
	})

	t.Run("deleting another session keeps current", func(t *testing.T) {
		store, _ := newTestStore(t)
		first := store.Current()
		second := store.CreateSession()

		require.NoError(t, store.DeleteSession(first.ID))
		assert.Equal(t, second.ID, store.Current().ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)
		require.NoError(t, store.DeleteSession("missing"))
		assert.Len(t, store.Snapshot().Sessions, 1)
	})
}

func TestAppendMessage(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.Current()

	ok := store.AppendMessage(sess.ID, types.NewUserMessage("hi"))
	require.True(t, ok)

	msgs := store.Current().Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[1].Content)

	assert.False(t, store.AppendMessage("missing", types.NewUserMessage("x")))
}

func TestApplyTurnReplacesProjectStateWholesale(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.Current()

	// Seed some prior graph state that a turn must fully replace, not merge.
	store.ApplyTurn(sess.ID, types.NewAssistantMessage("first"), "Title A",
		[]types.WorkflowNode{{ID: "old-1"}, {ID: "old-2"}},
		[]types.WorkflowEdge{{ID: "e-old", Source: "old-1", Target: "old-2"}},
		[]types.ProjectFile{{Filename: "old.md"}})

	nodes := []types.WorkflowNode{{ID: "n1", Label: "Auth", Type: types.NodeConcept}}
	edges := []types.WorkflowEdge{}
	files := []types.ProjectFile{{Filename: "auth", Title: "Auth"}}
	ok := store.ApplyTurn(sess.ID, types.NewAssistantMessage("second"), "Title B", nodes, edges, files)
	require.True(t, ok)

	got := store.Current()
	assert.Equal(t, "Title B", got.Title)
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "n1", got.Nodes[0].ID)
	assert.Empty(t, got.Edges)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "auth", got.Files[0].Filename)
}

func TestApplyTurnKeepsTitleWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	sess := store.Current()
	store.RenameSession(sess.ID, "Keep Me")

	store.ApplyTurn(sess.ID, types.NewAssistantMessage("m"), "", nil, nil, nil)
	assert.Equal(t, "Keep Me", store.Current().Title)
}

func TestEveryMutationPersists(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	loadState := func() types.AppState {
		raw, found, err := storage.Load(StorageKey)
		require.NoError(t, err)
		require.True(t, found)
		var st types.AppState
		require.NoError(t, json.Unmarshal([]byte(raw), &st))
		return st
	}

	created := store.CreateSession()
	assert.Len(t, loadState().Sessions, 2)

	store.RenameSession(created.ID, "persisted")
	assert.Equal(t, "persisted", loadState().Sessions[0].Title)

	store.SetLoading(true)
	assert.True(t, loadState().IsLoading)

	store.SetModel("gemini-3-flash-preview")
	assert.Equal(t, "gemini-3-flash-preview", loadState().SelectedModel)

	require.NoError(t, store.DeleteSession(created.ID))
	assert.Len(t, loadState().Sessions, 1)
}

func TestSnapshotIsCopyOnWrite(t *testing.T) {
	store, _ := newTestStore(t)
	snap := store.Snapshot()
	before := len(snap.Sessions[0].Messages)

	store.AppendMessage(snap.CurrentSessionID, types.NewUserMessage("later"))

	assert.Len(t, snap.Sessions[0].Messages, before, "held snapshots must not observe later mutations")
}
