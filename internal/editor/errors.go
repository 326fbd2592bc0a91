package editor

import (
	"errors"
	"fmt"
)

// ErrSpawn matches every *SpawnError via errors.Is.
var ErrSpawn = errors.New("editor could not be launched")

// errNoCommand is wrapped in a SpawnError when detection found nothing.
var errNoCommand = errors.New("no editor found (set $VISUAL or $EDITOR, or pass --editor)")

// SpawnError reports that the editor process could not be started at all.
// A running editor that exits non-zero is not a SpawnError.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("cannot launch editor: %v", e.Err)
	}
	return fmt.Sprintf("cannot launch editor %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}
