package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/entrhq/architect/pkg/attachments"
	"github.com/entrhq/architect/pkg/config"
	"github.com/entrhq/architect/pkg/i18n"
	"github.com/entrhq/architect/pkg/types"
	"github.com/entrhq/architect/pkg/vault"
)

// sidebarWidth is the outer width of the session list column.
const sidebarWidth = 30

// layoutOverhead counts the fixed lines around the chat body: header, tips,
// notice line, input box, and the bottom bar.
const layoutOverhead = 14

func (m *model) chatWidth() int {
	w := m.width - sidebarWidth - 1
	if w < 20 {
		w = 20
	}
	return w
}

func (m *model) recalculateLayout() {
	vpHeight := m.height - layoutOverhead
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(m.chatWidth(), vpHeight)
	} else {
		m.viewport.Width = m.chatWidth()
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(m.width - 6)
}

func (m *model) rebuildRenderer() {
	wrap := m.chatWidth() - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.logger.Warnf("failed to build markdown renderer: %v", err)
		return
	}
	m.renderer = renderer
}

// renderConversation formats the chat log of one session. Assistant messages
// go through glamour; user messages are shown plain with a role label.
func (m *model) renderConversation(sess types.ChatSession) string {
	var b strings.Builder
	for _, msg := range sess.Messages {
		switch msg.Role {
		case types.RoleUser:
			b.WriteString(userStyle.Render("You") + "\n")
			b.WriteString(msg.Content + "\n\n")
		default:
			if m.renderer != nil {
				if out, err := m.renderer.Render(msg.Content); err == nil {
					b.WriteString(out + "\n")
					continue
				}
			}
			b.WriteString(msg.Content + "\n\n")
		}
	}
	return b.String()
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	sess := m.store.Current()
	if m.showFiles {
		m.viewport.SetContent(m.renderFiles(sess))
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(m.renderConversation(sess))
	m.viewport.GotoBottom()
}

// renderFiles lists the session's project files with the metadata the
// assistant embeds as frontmatter.
func (m *model) renderFiles(sess types.ChatSession) string {
	if len(sess.Files) == 0 {
		return tipsStyle.Render("No project files yet.")
	}
	var b strings.Builder
	for _, f := range sess.Files {
		b.WriteString(currentSessionStyle.Render(f.Title) + "\n")
		line := fmt.Sprintf("%s · %s", vault.EnsureMarkdownSuffix(f.Filename), f.Type)
		if fm, ok := vault.ParseFrontmatter(f.Content); ok {
			switch {
			case fm.Summary != "":
				line += " · " + fm.Summary
			case fm.Status != "":
				line += " · " + fm.Status
			}
		}
		b.WriteString(sessionStyle.Render(line) + "\n\n")
	}
	return b.String()
}

// handleAttach stages a file for the next message. The file is read now so a
// later edit or delete does not change what gets sent.
func (m *model) handleAttach(path string) tea.Cmd {
	name := filepath.Base(path)
	if !m.attach.Allowed(name) {
		return m.showToast(i18n.T("unsupportedAttachment"), true)
	}
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return m.showToast(fmt.Sprintf("failed to read attachment: %v", err), true)
	}
	m.pending = append(m.pending, attachments.Attachment{Name: name, Content: data})
	return m.showToast(fmt.Sprintf("%s: %s", i18n.T("file"), name), false)
}

func (m *model) cycleModel() {
	if len(m.models) == 0 {
		return
	}
	current := m.store.SelectedModel()
	next := 0
	for i, info := range m.models {
		if info.ID == current {
			next = (i + 1) % len(m.models)
			break
		}
	}
	id := m.models[next].ID
	m.store.SetModel(id)
	m.persistModelChoice(id)
}

// persistModelChoice records the selection in the config file so the next
// run starts on the same model.
func (m *model) persistModelChoice(id string) {
	if m.cfg == nil {
		return
	}
	llm := config.LoadLLM(m.cfg)
	llm.Model = id
	llm.Provider = config.ProviderForModel(id)
	if err := config.SaveLLM(m.cfg, llm); err != nil {
		m.logger.Warnf("failed to persist model choice: %v", err)
	}
}

// switchSession moves the current-session marker up or down the sidebar.
func (m *model) switchSession(delta int) {
	state := m.store.Snapshot()
	if len(state.Sessions) < 2 {
		return
	}
	idx := 0
	for i, sess := range state.Sessions {
		if sess.ID == state.CurrentSessionID {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(state.Sessions) - 1
	}
	if idx >= len(state.Sessions) {
		idx = 0
	}
	m.store.SelectSession(state.Sessions[idx].ID)
	m.refreshViewport()
}

func (m *model) enterRename() {
	m.mode = modeRename
	m.draft = m.textarea.Value()
	m.textarea.SetValue(m.store.Current().Title)
	m.textarea.Placeholder = i18n.T("rename")
	m.textarea.CursorEnd()
}

func (m *model) exitRename() {
	m.mode = modeChat
	m.textarea.SetValue(m.draft)
	m.draft = ""
	m.textarea.Placeholder = i18n.T("placeholder")
}
