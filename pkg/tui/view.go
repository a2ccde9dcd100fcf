package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/architect/pkg/i18n"
)

// View renders the entire TUI interface.
// This is called by Bubble Tea whenever the UI needs to be redrawn.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.buildHeader()
	tips := m.buildTips()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.buildSidebar(), m.viewport.View())
	notice := m.buildNotice()
	inputBox := m.buildInputBox()
	bottomBar := m.buildBottomBar()

	return strings.Join([]string{header, tips, body, notice, inputBox, bottomBar}, "\n")
}

// buildHeader renders the Architect ASCII art header.
func (m *model) buildHeader() string {
	return headerStyle.Render(
		` █████╗ ██████╗  ██████╗██╗  ██╗██╗████████╗███████╗ ██████╗████████╗
██╔══██╗██╔══██╗██╔════╝██║  ██║██║╚══██╔══╝██╔════╝██╔════╝╚══██╔══╝
███████║██████╔╝██║     ███████║██║   ██║   █████╗  ██║        ██║
██╔══██║██╔══██╗██║     ██╔══██║██║   ██║   ██╔══╝  ██║        ██║
██║  ██║██║  ██║╚██████╗██║  ██║██║   ██║   ███████╗╚██████╗   ██║
╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝   ╚═╝   ╚══════╝ ╚═════╝   ╚═╝`)
}

// buildTips renders the key binding summary.
func (m *model) buildTips() string {
	if m.mode == modeRename {
		return tipsStyle.Render("  " + i18n.T("rename") + " Enter to apply, Esc to cancel")
	}
	return tipsStyle.Render("  Enter send • Ctrl+N new • Ctrl+↑/↓ switch • Ctrl+R rename • Ctrl+X delete • Ctrl+F files • Tab model • Ctrl+E export • Ctrl+Y copy • /attach <path> • Ctrl+C quit")
}

// buildSidebar renders the session list column.
func (m *model) buildSidebar() string {
	state := m.store.Snapshot()

	maxTitle := sidebarWidth - 6
	var b strings.Builder
	b.WriteString(sidebarTitleStyle.Render("Sessions") + "\n")
	for _, sess := range state.Sessions {
		title := sess.Title
		if len(title) > maxTitle {
			title = title[:maxTitle-1] + "…"
		}
		if sess.ID == state.CurrentSessionID {
			b.WriteString(currentSessionStyle.Render("▸ "+title) + "\n")
		} else {
			b.WriteString(sessionStyle.Render("  "+title) + "\n")
		}
	}
	b.WriteString("\n" + tipsStyle.Render("Ctrl+N "+i18n.T("newProject")))

	height := m.viewport.Height - 2
	if height < 3 {
		height = 3
	}
	return sidebarStyle.Width(sidebarWidth - 2).Height(height).Render(b.String())
}

// buildNotice renders the single status line between the chat body and the
// input box: the loading spinner while a turn runs, otherwise any active
// toast, otherwise blank.
func (m *model) buildNotice() string {
	if m.busy {
		return loadingStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), i18n.T("thinking")))
	}
	if m.toast != nil && m.toast.showUntil.After(nowFunc()) {
		if m.toast.isError {
			return toastErrorStyle.Render("✗ " + m.toast.message)
		}
		return toastStyle.Render("✓ " + m.toast.message)
	}
	return ""
}

// buildInputBox renders the text input area.
func (m *model) buildInputBox() string {
	box := inputBoxStyle.Width(m.width - 4)
	if m.mode == modeRename {
		return box.BorderForeground(mintGreen).Render(promptLabelStyle.Render(i18n.T("rename")) + "\n" + m.textarea.View())
	}
	return box.Render(m.textarea.View())
}

// buildBottomBar renders model, session count, and pending attachments.
func (m *model) buildBottomBar() string {
	state := m.store.Snapshot()

	left := fmt.Sprintf("model: %s", state.SelectedModel)
	center := fmt.Sprintf("%d session(s)", len(state.Sessions))
	right := ""
	if n := len(m.pending); n > 0 {
		right = fmt.Sprintf("%s: %d", i18n.T("attachedFiles"), n)
	}

	totalUsed := len(left) + len(center) + len(right)
	pad := (m.width - totalUsed) / 3
	if pad < 2 {
		pad = 2
	}
	return statusBarStyle.Width(m.width).Render(
		left + strings.Repeat(" ", pad) + center + strings.Repeat(" ", pad) + right,
	)
}
