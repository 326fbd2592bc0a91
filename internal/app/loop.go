package app

import (
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	"go.uber.org/zap"
)

// Run renders, waits for one command, applies it and repeats until Quit.
// Everything happens on the calling goroutine; an editor session blocks the
// loop until the editor exits.
func (app *Application) Run() {
	app.logger.Info("browser started",
		zap.String("path", app.state.CurrentPath),
		zap.Bool("show_hidden", app.state.ShowHidden),
		zap.Strings("editor", app.handoff.Command()))

	for !app.shouldQuit {
		app.renderer.Render(app.state)
		app.handleAction(app.dispatcher.Next())
	}

	app.logger.Info("browser stopped", zap.String("path", app.state.CurrentPath))
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return
	case statepkg.ResizeAction:
		// Not a user command: the error message stays visible.
		app.screen.Sync()
		_, _ = app.reducer.Reduce(app.state, a)
		return
	}

	app.state.LastError = nil
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.logger.Debug("action failed", zap.String("action", actionName(action)), zap.Error(err))
		app.state.LastError = err
	}
}

func actionName(action statepkg.Action) string {
	switch action.(type) {
	case statepkg.MoveSelectionAction:
		return "move"
	case statepkg.DescendAction:
		return "descend"
	case statepkg.AscendAction:
		return "ascend"
	case statepkg.ActivateAction:
		return "activate"
	case statepkg.ToggleHiddenAction:
		return "toggle-hidden"
	case statepkg.ReloadAction:
		return "reload"
	default:
		return "unknown"
	}
}
