package state

import (
	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Layout shared by the reducer (scroll window) and the renderer.
const (
	// HelpPaneHeight is the height of the bordered help box, borders included.
	HelpPaneHeight = 3
	// listPaneChrome is the number of rows the listing box spends on borders.
	listPaneChrome = 2
)

// BrowserState is the single source of truth for the browser.
type BrowserState struct {
	// Navigation & filesystem
	CurrentPath string
	Listing     fsutil.Listing
	ShowHidden  bool

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// LastError is shown inline until the next command is applied.
	LastError error
}

// ListRowsForHeight returns how many listing rows fit on a screen of height h.
func ListRowsForHeight(h int) int {
	rows := h - HelpPaneHeight - listPaneChrome
	if rows < 0 {
		return 0
	}
	return rows
}

// VisibleRows returns the number of listing rows the current screen shows.
func (s *BrowserState) VisibleRows() int {
	return ListRowsForHeight(s.ScreenHeight)
}

// CurrentEntry returns the selected entry, or nil for an empty listing.
func (s *BrowserState) CurrentEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Listing) {
		return nil
	}
	return &s.Listing[s.SelectedIndex]
}

// AtRoot reports whether CurrentPath has no parent.
func (s *BrowserState) AtRoot() bool {
	return isRoot(s.CurrentPath)
}

func (s *BrowserState) moveSelection(delta int) {
	if len(s.Listing) == 0 {
		return
	}
	s.SelectedIndex = clamp(s.SelectedIndex+delta, 0, len(s.Listing)-1)
	s.ensureSelectionVisible()
}

// clampSelection restores 0 <= SelectedIndex < len(Listing) after the
// listing was replaced.
func (s *BrowserState) clampSelection() {
	if len(s.Listing) == 0 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}
	s.SelectedIndex = clamp(s.SelectedIndex, 0, len(s.Listing)-1)
}

// ensureSelectionVisible moves the scroll window so the selected row is on screen.
func (s *BrowserState) ensureSelectionVisible() {
	rows := s.VisibleRows()
	if rows < 1 {
		rows = 1
	}

	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+rows {
		s.ScrollOffset = s.SelectedIndex - rows + 1
	}

	maxOffset := len(s.Listing) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	s.ScrollOffset = clamp(s.ScrollOffset, 0, maxOffset)
}

func (s *BrowserState) indexOf(name string) int {
	for i, e := range s.Listing {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
