package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

// MoveSelectionAction moves the cursor by Delta rows without wrapping.
type MoveSelectionAction struct {
	Delta int
}

type DescendAction struct{}
type AscendAction struct{}

// ActivateAction ascends, descends or opens the selected file in the editor.
type ActivateAction struct{}

// ===== VIEW ACTIONS =====

type ToggleHiddenAction struct{}

// ReloadAction re-reads the current directory, keeping the selection position.
type ReloadAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
