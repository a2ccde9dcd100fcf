package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/entrhq/architect/pkg/attachments"
	"github.com/entrhq/architect/pkg/config"
	"github.com/entrhq/architect/pkg/i18n"
	"github.com/entrhq/architect/pkg/logging"
	"github.com/entrhq/architect/pkg/session"
	"github.com/entrhq/architect/pkg/turn"
)

// inputMode switches what the textarea is editing: the next chat message or
// the new title of the current session.
type inputMode int

const (
	modeChat inputMode = iota
	modeRename
)

// model represents the state of the TUI application.
// It contains all components needed for the interactive terminal interface.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// Domain integration
	store      *session.Store
	controller *turn.Controller
	attach     *attachments.Renderer
	logger     *logging.Logger

	// Markdown rendering for assistant messages
	renderer *glamour.TermRenderer

	// Model catalog for the tab cycle, and the config file the choice is
	// persisted to (nil means the choice lives only in the session state)
	models []config.ModelInfo
	cfg    *config.FileStore

	// Pending attachments to fold into the next message
	pending []attachments.Attachment

	// UI state
	mode      inputMode
	draft     string // chat input saved while the rename prompt is active
	toast     *toastNotification
	busy      bool
	showFiles bool // viewport shows the project files instead of the chat

	// Window dimensions
	width  int
	height int
	ready  bool
}

// turnFinishedMsg signals that a submitted turn has completed.
type turnFinishedMsg struct {
	sessionID string
	err       error
}

// exportFinishedMsg signals that a vault export has been written (or failed).
type exportFinishedMsg struct {
	path string
	err  error
}

// clipboardMsg signals the outcome of a copy-to-clipboard action.
type clipboardMsg struct{ err error }

// toastExpiredMsg clears an expired toast notification.
type toastExpiredMsg struct{}

// toastNotification represents a temporary notification message.
type toastNotification struct {
	message   string
	isError   bool
	showUntil time.Time
}

const toastDuration = 4 * time.Second

// nowFunc is swapped in tests.
var nowFunc = time.Now

func initialModel(store *session.Store, controller *turn.Controller, logger *logging.Logger, cfg *config.FileStore) model {
	ta := textarea.New()
	ta.Placeholder = i18n.T("placeholder")
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	attach, err := attachments.NewRenderer(attachments.DefaultAllowlist)
	if err != nil {
		// The default allowlist always compiles; a failure here means the
		// list was edited, fall back to rejecting everything.
		logger.Errorf("failed to compile attachment allowlist: %v", err)
		attach, _ = attachments.NewRenderer(nil)
	}

	return model{
		textarea:   ta,
		spinner:    sp,
		store:      store,
		controller: controller,
		attach:     attach,
		logger:     logger,
		models:     config.Models(),
		cfg:        cfg,
		mode:       modeChat,
	}
}

// showToast replaces the active toast and returns the command that clears it.
func (m *model) showToast(message string, isError bool) tea.Cmd {
	m.toast = &toastNotification{
		message:   message,
		isError:   isError,
		showUntil: time.Now().Add(toastDuration),
	}
	return expireToast(m.toast.showUntil)
}
