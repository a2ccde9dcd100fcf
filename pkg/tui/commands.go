package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/architect/pkg/types"
	"github.com/entrhq/architect/pkg/vault"
)

// submitTurn runs one assistant turn off the UI goroutine. The store is the
// source of truth while the turn runs; the finished message only tells the
// UI to re-read it.
func (m *model) submitTurn(sessionID, text string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		err := controller.Submit(context.Background(), sessionID, text)
		return turnFinishedMsg{sessionID: sessionID, err: err}
	}
}

// exportVault writes the current session's vault zip into the working
// directory.
func (m *model) exportVault() tea.Cmd {
	sess := m.store.Current()
	return func() tea.Msg {
		data, err := vault.Generate(sess.Title, sess.Nodes, sess.Edges, sess.Files)
		if err != nil {
			return exportFinishedMsg{err: err}
		}
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path := filepath.Join(dir, vault.SuggestedArchiveName(sess.Title))
		if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
			return exportFinishedMsg{err: err}
		}
		return exportFinishedMsg{path: path}
	}
}

// copyLastAssistantMessage copies the newest assistant message of the current
// session to the system clipboard.
func (m *model) copyLastAssistantMessage() tea.Cmd {
	sess := m.store.Current()
	return func() tea.Msg {
		for i := len(sess.Messages) - 1; i >= 0; i-- {
			if sess.Messages[i].Role == types.RoleAssistant {
				return clipboardMsg{err: clipboard.WriteAll(sess.Messages[i].Content)}
			}
		}
		return clipboardMsg{}
	}
}

// expireToast schedules the toast cleanup tick.
func expireToast(at time.Time) tea.Cmd {
	return tea.Tick(time.Until(at), func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}
