package state

import (
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// NewBrowserState loads startPath and returns the initial state. The error
// is an *fs.AccessError when the directory cannot be read.
func NewBrowserState(provider fsutil.Provider, startPath string, showHidden bool) (*BrowserState, error) {
	dirPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", startPath, err)
	}

	listing, err := fsutil.Load(provider, dirPath, showHidden)
	if err != nil {
		return nil, err
	}

	return &BrowserState{
		CurrentPath: dirPath,
		Listing:     listing,
		ShowHidden:  showHidden,
	}, nil
}

func isRoot(path string) bool {
	return filepath.Dir(path) == path
}
