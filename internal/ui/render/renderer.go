package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

const emptyPlaceholder = "(empty)"

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the whole screen from state. It only reads state, so equal
// states always produce equal cells.
func (r *Renderer) Render(state *statepkg.BrowserState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := computeLayout(w, h)
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	if !layout.fits() {
		r.drawTextLine(0, 0, w, r.truncateTextToWidth("terminal too small", w), baseStyle)
		r.screen.Show()
		return
	}

	borderStyle := baseStyle.Foreground(r.theme.BorderFg)

	// Listing pane
	r.drawBox(0, layout.listTop, w, layout.listBottom, borderStyle)
	r.drawTitle(layout.listTop, w, textutil.SanitizeTerminalText(state.CurrentPath), baseStyle.Foreground(r.theme.TitleFg).Bold(true))
	r.drawListing(state, layout, baseStyle)
	if state.LastError != nil {
		r.drawError(layout.listBottom, w, state.LastError, baseStyle.Foreground(r.theme.ErrorFg).Bold(true))
	}

	// Help pane
	helpBottom := layout.helpTop + statepkg.HelpPaneHeight - 1
	r.drawBox(0, layout.helpTop, w, helpBottom, borderStyle)
	r.drawTitle(layout.helpTop, w, "Help", baseStyle.Foreground(r.theme.TitleFg))
	r.drawTextLine(layout.innerX, layout.helpTop+1, layout.innerWidth, r.truncateTextToWidth(buildHelpText(state), layout.innerWidth), baseStyle.Foreground(r.theme.HelpFg))

	r.screen.Show()
}

// drawBox draws a single-line border spanning columns [0, w) and rows
// [top, bottom].
func (r *Renderer) drawBox(left, top, w, bottom int, style tcell.Style) {
	right := left + w - 1
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawTitle writes " title " into a top border, keeping the tail of long titles.
func (r *Renderer) drawTitle(y, w int, title string, style tcell.Style) {
	available := w - 4
	if available <= 2 || title == "" {
		return
	}
	title = r.truncateLeftToWidth(title, available-2)
	r.drawTextLine(2, y, available, " "+title+" ", style)
}

func (r *Renderer) drawError(y, w int, err error, style tcell.Style) {
	available := w - 4
	if available <= 2 {
		return
	}
	msg := textutil.SanitizeTerminalText(err.Error())
	msg = r.truncateTextToWidth(msg, available-2)
	r.drawTextLine(2, y, available, " "+msg+" ", style)
}

func (r *Renderer) drawListing(state *statepkg.BrowserState, layout layoutMetrics, baseStyle tcell.Style) {
	startY := layout.listTop + 1
	endX := layout.innerX + layout.innerWidth

	if len(state.Listing) == 0 {
		r.drawTextLine(layout.innerX+markerWidth, startY, layout.innerWidth-markerWidth, emptyPlaceholder, baseStyle.Foreground(r.theme.MetaFg).Italic(true))
		return
	}

	offset := scrollWindow(state, layout.listRows)
	end := offset + layout.listRows
	if end > len(state.Listing) {
		end = len(state.Listing)
	}

	y := startY
	for idx := offset; idx < end; idx++ {
		entry := state.Listing[idx]
		isSelected := idx == state.SelectedIndex

		rowStyle := r.entryStyle(entry, isSelected, baseStyle)
		metaStyle := rowStyle
		if !isSelected {
			metaStyle = baseStyle.Foreground(r.theme.MetaFg)
		}

		x := r.drawTextLine(layout.innerX, y, layout.innerWidth, " "+entryMarker(entry)+" ", rowStyle)

		name := textutil.SanitizeTerminalText(entry.DisplayName())
		name = r.truncateTextToWidth(name, layout.nameWidth)
		nameEnd := r.drawTextLine(x, y, layout.nameWidth, name, rowStyle)
		r.fill(nameEnd, x+layout.nameWidth, y, rowStyle)
		x += layout.nameWidth

		if layout.showSize {
			r.fill(x, x+columnGap, y, rowStyle)
			x += columnGap
			x = r.drawTextLine(x, y, sizeColumnWidth, r.padLeft(formatSizeColumn(entry), sizeColumnWidth), metaStyle)
		}
		if layout.showTime {
			r.fill(x, x+columnGap, y, rowStyle)
			x += columnGap
			timeText := formatTimeColumn(entry)
			timeEnd := r.drawTextLine(x, y, timeColumnWidth, timeText, metaStyle)
			r.fill(timeEnd, x+timeColumnWidth, y, metaStyle)
			x += timeColumnWidth
		}

		r.fill(x, endX, y, rowStyle)
		y++
	}
}

func (r *Renderer) entryStyle(entry fsutil.Entry, isSelected bool, baseStyle tcell.Style) tcell.Style {
	var rowStyle tcell.Style
	switch {
	case isSelected:
		return tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	case entry.IsSymlink:
		rowStyle = baseStyle.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		rowStyle = baseStyle.Foreground(r.theme.DirectoryFg)
	default:
		rowStyle = baseStyle.Foreground(r.theme.FileFg)
	}
	if entry.IsHidden() {
		rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
	}
	return rowStyle
}

// entryMarker returns @ for symlinks, / for directories, space for files.
func entryMarker(entry fsutil.Entry) string {
	switch {
	case entry.IsParent:
		return " "
	case entry.IsSymlink:
		return "@"
	case entry.IsDir:
		return "/"
	default:
		return " "
	}
}

func formatSizeColumn(entry fsutil.Entry) string {
	switch {
	case entry.IsDir:
		return "DIR"
	case !entry.HasMetadata():
		return ""
	default:
		return fsutil.FormatSize(entry.Size)
	}
}

func formatTimeColumn(entry fsutil.Entry) string {
	if entry.IsParent || !entry.HasMetadata() || entry.Modified.IsZero() {
		return ""
	}
	return entry.Modified.Local().Format(timeLayout)
}
