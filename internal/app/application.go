// Package app wires the browser state, renderer, input dispatcher and editor
// handoff into the main loop.
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fbrowse/internal/editor"
	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
	"go.uber.org/zap"
)

// Options carries the collaborators the application does not build itself.
// Zero values select the real filesystem, os/exec and a no-op logger.
type Options struct {
	EditorCommand []string
	Provider      fsutil.Provider
	Spawner       editor.Spawner
	Logger        *zap.Logger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.BrowserState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	dispatcher *inputui.Dispatcher
	handoff    *editor.Handoff
	logger     *zap.Logger
	shouldQuit bool
}

// NewApplication builds the application around an initialised screen and
// the already loaded starting state.
func NewApplication(screen tcell.Screen, state *statepkg.BrowserState, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	handoff := editor.NewHandoff(opts.EditorCommand, screen, opts.Spawner, logger.Named("editor"))

	return &Application{
		screen:     screen,
		state:      state,
		reducer:    statepkg.NewStateReducer(opts.Provider, handoff, logger.Named("state")),
		renderer:   renderui.NewRenderer(screen),
		dispatcher: inputui.NewDispatcher(screen),
		handoff:    handoff,
		logger:     logger,
	}
}

// State returns the live browser state.
func (app *Application) State() *statepkg.BrowserState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
