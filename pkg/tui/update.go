package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/architect/pkg/i18n"
	"github.com/entrhq/architect/pkg/session"
	"github.com/entrhq/architect/pkg/turn"
)

// attachCommand stages a file for the next message when typed as the whole
// input line.
const attachCommand = "/attach "

func (m *model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles all state updates for the TUI model.
//
// Uses pointer receiver so key handlers can mutate UI state directly.
//
//nolint:gocyclo
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var spCmd tea.Cmd
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		m.rebuildRenderer()
		m.ready = true
		m.refreshViewport()
		return m, spCmd

	case spinner.TickMsg:
		// The store may gain the user message and loading flag mid-turn;
		// ticks double as a cheap refresh while a turn runs.
		if m.busy {
			m.refreshViewport()
		}
		return m, spCmd

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, tea.Batch(spCmd, cmd)
		}

	case turnFinishedMsg:
		m.busy = false
		m.refreshViewport()
		if msg.err != nil {
			m.logger.Errorf("turn failed for session %s: %v", msg.sessionID, msg.err)
			if !errors.Is(msg.err, turn.ErrTurnInFlight) {
				return m, tea.Batch(spCmd, m.showToast(msg.err.Error(), true))
			}
		}
		return m, spCmd

	case exportFinishedMsg:
		if msg.err != nil {
			m.logger.Errorf("vault export failed: %v", msg.err)
			return m, tea.Batch(spCmd, m.showToast(fmt.Sprintf("export failed: %v", msg.err), true))
		}
		return m, tea.Batch(spCmd, m.showToast(fmt.Sprintf("%s: %s", i18n.T("exportVault"), msg.path), false))

	case clipboardMsg:
		if msg.err != nil {
			return m, tea.Batch(spCmd, m.showToast(fmt.Sprintf("copy failed: %v", msg.err), true))
		}
		return m, tea.Batch(spCmd, m.showToast("copied to clipboard", false))

	case toastExpiredMsg:
		if m.toast != nil && !m.toast.showUntil.After(nowFunc()) {
			m.toast = nil
		}
		return m, spCmd
	}

	var tiCmd, vpCmd tea.Cmd
	if !m.busy || m.mode == modeRename {
		m.textarea, tiCmd = m.textarea.Update(msg)
	}
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// handleKey processes the global key bindings. It reports false for keys the
// textarea and viewport should see instead.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true

	case "esc":
		if m.mode == modeRename {
			m.exitRename()
			return nil, true
		}
		return nil, false

	case "enter":
		return m.handleEnter()

	case "ctrl+n":
		if m.busy || m.mode != modeChat {
			return nil, true
		}
		m.store.CreateSession()
		m.refreshViewport()
		return nil, true

	case "ctrl+r":
		if m.busy || m.mode != modeChat {
			return nil, true
		}
		m.enterRename()
		return nil, true

	case "ctrl+x":
		if m.busy || m.mode != modeChat {
			return nil, true
		}
		if err := m.store.DeleteSession(m.store.Current().ID); err != nil {
			if errors.Is(err, session.ErrLastSession) {
				return m.showToast("cannot delete the only session", true), true
			}
			return m.showToast(err.Error(), true), true
		}
		m.refreshViewport()
		return nil, true

	case "ctrl+f":
		if m.mode != modeChat {
			return nil, true
		}
		m.showFiles = !m.showFiles
		m.refreshViewport()
		return nil, true

	case "ctrl+e":
		return m.exportVault(), true

	case "ctrl+y":
		return m.copyLastAssistantMessage(), true

	case "tab":
		if m.mode != modeChat {
			return nil, false
		}
		m.cycleModel()
		return nil, true

	case "ctrl+up":
		if m.mode == modeChat && !m.busy {
			m.switchSession(-1)
		}
		return nil, true

	case "ctrl+down":
		if m.mode == modeChat && !m.busy {
			m.switchSession(1)
		}
		return nil, true
	}
	return nil, false
}

// handleEnter submits the rename prompt or the chat input.
func (m *model) handleEnter() (tea.Cmd, bool) {
	if m.mode == modeRename {
		title := strings.TrimSpace(m.textarea.Value())
		m.store.RenameSession(m.store.Current().ID, title)
		m.textarea.Reset()
		m.exitRename()
		return nil, true
	}

	if m.busy {
		return nil, true
	}
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return nil, true
	}

	if strings.HasPrefix(text, attachCommand) {
		m.textarea.Reset()
		return m.handleAttach(strings.TrimSpace(strings.TrimPrefix(text, attachCommand))), true
	}

	composed := m.attach.Render(text, m.pending)
	m.pending = nil
	m.textarea.Reset()
	m.busy = true
	return m.submitTurn(m.store.Current().ID, composed), true
}
