// Package tui provides the interactive terminal interface for Architect:
// a session sidebar, a markdown chat viewport, and the export and clipboard
// actions, all driven by the session store and turn controller.
//
// The TUI codebase is split into multiple files for better organization:
// - executor.go: Program lifecycle
// - model.go: Core model structure and state
// - update.go: Bubble Tea Update function and key handling
// - view.go: Bubble Tea View function and rendering
// - content.go: Conversation rendering and session actions
// - commands.go: Async commands (turns, export, clipboard)
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/architect/pkg/config"
	"github.com/entrhq/architect/pkg/logging"
	"github.com/entrhq/architect/pkg/session"
	"github.com/entrhq/architect/pkg/turn"
)

// Executor owns the Bubble Tea program wrapping the store and controller.
type Executor struct {
	store      *session.Store
	controller *turn.Controller
	cfg        *config.FileStore
	program    *tea.Program
	logger     *logging.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithConfigStore makes model selections persist to the config file.
func WithConfigStore(cfg *config.FileStore) ExecutorOption {
	return func(e *Executor) {
		e.cfg = cfg
	}
}

// NewExecutor creates a TUI executor over an initialized store and controller.
func NewExecutor(store *session.Store, controller *turn.Controller, opts ...ExecutorOption) *Executor {
	logger, _ := logging.NewLogger("tui")
	e := &Executor{
		store:      store,
		controller: controller,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts the TUI and blocks until the user exits.
func (e *Executor) Run(ctx context.Context) error {
	defer func() {
		if e.logger != nil {
			_ = e.logger.Close()
		}
	}()

	m := initialModel(e.store, e.controller, e.logger, e.cfg)
	e.program = tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := e.program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// Shutdown signal, not a failure.
			return nil
		}
		return fmt.Errorf("failed to run TUI program: %w", err)
	}
	return nil
}
