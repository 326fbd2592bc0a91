package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

// buildHelpText returns the help pane line with leading/trailing padding.
func buildHelpText(state *statepkg.BrowserState) string {
	parts := buildHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildHelpSegments lists the key bindings followed by the hidden-file status.
func buildHelpSegments(state *statepkg.BrowserState) []string {
	segments := []string{
		"↑/↓: move",
		"↵: open",
		"⌫: parent",
	}

	hiddenStatus := "hidden"
	if state != nil && state.ShowHidden {
		hiddenStatus = "shown"
	}
	segments = append(segments, "h: dotfiles "+hiddenStatus, "q: quit")

	return segments
}
