package state

import (
	"errors"
	"path/filepath"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	"go.uber.org/zap"
)

// ErrNoEditor is returned by Activate on a file when no editor is wired in.
var ErrNoEditor = errors.New("no editor configured")

// Editor opens a file for interactive editing and returns once the user is done.
type Editor interface {
	Edit(path string) error
}

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	provider fsutil.Provider
	editor   Editor
	logger   *zap.Logger
}

// NewStateReducer creates a new reducer. A nil provider reads the local
// filesystem; a nil logger discards output.
func NewStateReducer(provider fsutil.Provider, editor Editor, logger *zap.Logger) *StateReducer {
	if provider == nil {
		provider = fsutil.OSProvider{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateReducer{
		provider: provider,
		editor:   editor,
		logger:   logger,
	}
}

// Reduce applies action to state in place. Errors are non-fatal: on failure
// the state is left as it was before the action, except where noted.
func (r *StateReducer) Reduce(state *BrowserState, action Action) (*BrowserState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveSelectionAction:
		state.moveSelection(a.Delta)
		return state, nil

	case DescendAction:
		return state, r.descend(state)

	case AscendAction:
		return state, r.ascend(state)

	case ActivateAction:
		return state, r.activate(state)

	// ===== VIEW =====

	case ToggleHiddenAction:
		return state, r.toggleHidden(state)

	case ReloadAction:
		return state, r.reload(state)

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.ensureSelectionVisible()
		return state, nil

	case QuitAction:
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) descend(state *BrowserState) error {
	entry := state.CurrentEntry()
	if entry == nil || !entry.IsDir {
		return nil
	}
	return r.changeDirectory(state, entry.FullPath)
}

func (r *StateReducer) ascend(state *BrowserState) error {
	if state.AtRoot() {
		return nil
	}
	return r.changeDirectory(state, filepath.Dir(state.CurrentPath))
}

func (r *StateReducer) activate(state *BrowserState) error {
	entry := state.CurrentEntry()
	switch {
	case entry == nil:
		return nil
	case entry.IsParent:
		return r.ascend(state)
	case entry.IsDir:
		return r.descend(state)
	}

	path := entry.FullPath
	var editErr error
	if r.editor == nil {
		editErr = ErrNoEditor
	} else {
		editErr = r.editor.Edit(path)
	}
	if editErr != nil {
		r.logger.Warn("editor handoff failed", zap.String("path", path), zap.Error(editErr))
	}

	// The editor may have created, renamed or removed files.
	return errors.Join(editErr, r.reload(state))
}

// toggleHidden flips the flag even when the reload fails; the listing then
// keeps its previous contents until the next successful load.
func (r *StateReducer) toggleHidden(state *BrowserState) error {
	state.ShowHidden = !state.ShowHidden

	selectedName := ""
	if entry := state.CurrentEntry(); entry != nil {
		selectedName = entry.Name
	}

	if err := r.reload(state); err != nil {
		return err
	}

	// Keep the cursor on the same entry when it is still listed.
	if idx := state.indexOf(selectedName); selectedName != "" && idx >= 0 {
		state.SelectedIndex = idx
		state.ensureSelectionVisible()
	}
	return nil
}

// changeDirectory replaces path and listing, resetting the selection. On
// failure the state is untouched.
func (r *StateReducer) changeDirectory(state *BrowserState, path string) error {
	dirPath := filepath.Clean(path)

	listing, err := fsutil.Load(r.provider, dirPath, state.ShowHidden)
	if err != nil {
		r.logger.Warn("directory load failed", zap.String("path", dirPath), zap.Error(err))
		return err
	}

	state.CurrentPath = dirPath
	state.Listing = listing
	state.SelectedIndex = 0
	state.ScrollOffset = 0
	r.logger.Debug("directory loaded", zap.String("path", dirPath), zap.Int("entries", len(listing)))
	return nil
}

// reload re-reads CurrentPath and keeps the selection by position, clamped
// to the new length.
func (r *StateReducer) reload(state *BrowserState) error {
	listing, err := fsutil.Load(r.provider, state.CurrentPath, state.ShowHidden)
	if err != nil {
		r.logger.Warn("directory reload failed", zap.String("path", state.CurrentPath), zap.Error(err))
		return err
	}

	state.Listing = listing
	state.clampSelection()
	state.ensureSelectionVisible()
	r.logger.Debug("directory reloaded", zap.String("path", state.CurrentPath), zap.Int("entries", len(listing)))
	return nil
}
