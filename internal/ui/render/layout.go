package render

import statepkg "github.com/kk-code-lab/fbrowse/internal/state"

const (
	// " @ " in front of every name.
	markerWidth = 3
	// Right-aligned size column; fits "1023.99 KiB" and "DIR".
	sizeColumnWidth = 11
	// "2006-01-02 15:04:05"
	timeColumnWidth = 19
	columnGap       = 2
	minNameWidth    = 8
	timeLayout      = "2006-01-02 15:04:05"
)

type layoutMetrics struct {
	listTop    int // top border row of the listing box
	listBottom int // bottom border row of the listing box
	listRows   int
	innerX     int
	innerWidth int
	helpTop    int
	showSize   bool
	showTime   bool
	nameWidth  int
}

func computeLayout(w, h int) layoutMetrics {
	m := layoutMetrics{
		listTop:  0,
		listRows: statepkg.ListRowsForHeight(h),
		innerX:   1,
		helpTop:  h - statepkg.HelpPaneHeight,
	}
	m.listBottom = m.listTop + m.listRows + 1
	m.innerWidth = w - 2
	if m.innerWidth < 0 {
		m.innerWidth = 0
	}

	// Columns drop right to left as the terminal narrows: time first, then size.
	name := m.innerWidth - markerWidth - 1
	if name-(columnGap+sizeColumnWidth+columnGap+timeColumnWidth) >= minNameWidth {
		m.showSize = true
		m.showTime = true
		name -= columnGap + sizeColumnWidth + columnGap + timeColumnWidth
	} else if name-(columnGap+sizeColumnWidth) >= minNameWidth {
		m.showSize = true
		name -= columnGap + sizeColumnWidth
	}
	if name < 0 {
		name = 0
	}
	m.nameWidth = name
	return m
}

// fits reports whether the screen has room for both boxes.
func (m layoutMetrics) fits() bool {
	return m.listRows > 0 && m.innerWidth > 0 && m.helpTop > m.listBottom
}

// scrollWindow returns the first listing index to draw so that the selection
// is inside a window of rows entries.
func scrollWindow(state *statepkg.BrowserState, rows int) int {
	offset := state.ScrollOffset
	if rows <= 0 {
		return 0
	}
	if state.SelectedIndex < offset {
		offset = state.SelectedIndex
	} else if state.SelectedIndex >= offset+rows {
		offset = state.SelectedIndex - rows + 1
	}
	if maxOffset := len(state.Listing) - rows; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
