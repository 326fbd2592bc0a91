// Package editor hands the terminal over to an external editor process and
// takes it back once the editor exits.
package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// Terminal is the part of tcell.Screen the handoff needs.
type Terminal interface {
	Suspend() error
	Resume() error
	Sync()
}

// Process is a started editor.
type Process interface {
	Wait() error
}

// Spawner starts argv as an interactive child attached to the terminal.
type Spawner interface {
	Start(argv []string) (Process, error)
}

// Handoff runs the configured editor command on a file.
type Handoff struct {
	command  []string
	terminal Terminal
	spawner  Spawner
	logger   *zap.Logger
}

// NewHandoff creates a handoff for command (argv without the file). A nil
// spawner uses ExecSpawner; a nil logger discards output.
func NewHandoff(command []string, terminal Terminal, spawner Spawner, logger *zap.Logger) *Handoff {
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handoff{
		command:  append([]string(nil), command...),
		terminal: terminal,
		spawner:  spawner,
		logger:   logger,
	}
}

// Command returns the editor argv without the file argument.
func (h *Handoff) Command() []string {
	return append([]string(nil), h.command...)
}

// Edit suspends the terminal, runs the editor on path and waits for it to
// exit. The terminal is resumed and resynced on every return path. The
// editor's exit status is ignored; only a failure to launch it is reported,
// as *SpawnError.
func (h *Handoff) Edit(path string) (err error) {
	if len(h.command) == 0 {
		return &SpawnError{Err: errNoCommand}
	}

	argv := h.argsWithFile(path)

	defer func() {
		if restoreErr := h.restore(); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	if err := h.terminal.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	h.logger.Debug("starting editor", zap.Strings("argv", argv))
	proc, err := h.spawner.Start(argv)
	if err != nil {
		return &SpawnError{Command: filepath.Base(argv[0]), Err: err}
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			h.logger.Debug("editor exited with non-zero status",
				zap.String("path", path),
				zap.Int("exit_code", exitErr.ExitCode()))
			return nil
		}
		return fmt.Errorf("waiting for editor: %w", err)
	}

	h.logger.Debug("editor exited", zap.String("path", path))
	return nil
}

func (h *Handoff) restore() error {
	if err := h.terminal.Resume(); err != nil {
		h.logger.Warn("failed to resume screen", zap.Error(err))
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	h.terminal.Sync()
	return nil
}

func (h *Handoff) argsWithFile(filePath string) []string {
	args := make([]string, len(h.command)+1)
	copy(args, h.command)
	args[len(h.command)] = filePath
	return args
}
