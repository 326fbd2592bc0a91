package state

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	"github.com/stretchr/testify/require"
)

// deniedProvider reads the real filesystem but refuses the listed directories.
type deniedProvider struct {
	fsutil.OSProvider
	denied map[string]bool
}

func (p *deniedProvider) ReadDir(path string) ([]os.DirEntry, error) {
	if p.denied[filepath.Clean(path)] {
		return nil, iofs.ErrPermission
	}
	return p.OSProvider.ReadDir(path)
}

func (p *deniedProvider) deny(path string) {
	if p.denied == nil {
		p.denied = make(map[string]bool)
	}
	p.denied[filepath.Clean(path)] = true
}

// jailProvider refuses every directory outside root.
type jailProvider struct {
	fsutil.OSProvider
	root string
}

func (p *jailProvider) ReadDir(path string) ([]os.DirEntry, error) {
	rel, err := filepath.Rel(p.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, iofs.ErrPermission
	}
	return p.OSProvider.ReadDir(path)
}

// fakeEditor records the paths it was asked to open and optionally runs a
// side effect, standing in for the user's edits.
type fakeEditor struct {
	opened []string
	err    error
	during func(path string)
}

func (e *fakeEditor) Edit(path string) error {
	e.opened = append(e.opened, path)
	if e.during != nil {
		e.during(path)
	}
	return e.err
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func loadState(t *testing.T, provider fsutil.Provider, path string, showHidden bool) *BrowserState {
	t.Helper()
	state, err := NewBrowserState(provider, path, showHidden)
	require.NoError(t, err)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	return state
}

func listingNames(state *BrowserState) []string {
	names := make([]string, len(state.Listing))
	for i, e := range state.Listing {
		names[i] = e.DisplayName()
	}
	return names
}

func assertSelectionInBounds(t *testing.T, state *BrowserState) {
	t.Helper()
	if len(state.Listing) == 0 {
		return
	}
	require.GreaterOrEqual(t, state.SelectedIndex, 0)
	require.Less(t, state.SelectedIndex, len(state.Listing))
}
