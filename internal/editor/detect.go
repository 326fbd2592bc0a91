package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// Detect returns the editor argv to use. A non-empty override (the --editor
// flag) wins; otherwise $VISUAL, then $EDITOR, then the first well-known
// editor found on PATH.
func Detect(override string) ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, override, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos, override string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	// An explicit command is kept even when it does not resolve, so the
	// failure surfaces as a SpawnError on first use.
	if args := parseEditorCommand(override); len(args) > 0 {
		if resolved, ok := resolveEditorExecutableWithLookup(args[0], lookPath); ok {
			args[0] = resolved
		}
		return args, true
	}

	for _, candidate := range []string{getenv("VISUAL"), getenv("EDITOR")} {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveEditorExecutableWithLookup(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	for _, def := range defaultEditors(goos) {
		if resolved, ok := resolveEditorExecutableWithLookup(def[0], lookPath); ok {
			return append([]string{resolved}, def[1:]...), true
		}
	}

	return nil, false
}

func defaultEditors(goos string) [][]string {
	if strings.EqualFold(goos, "windows") {
		return [][]string{
			{"code", "--wait"},
			{"notepad++.exe"},
			{"notepad.exe"},
		}
	}
	return [][]string{
		{"nvim"},
		{"vim"},
		{"nano"},
		{"vi"},
	}
}

// parseEditorCommand splits cmd on whitespace, honouring single and double
// quotes, and expands a leading ~ in the executable.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case !inSingle && !inDouble && unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}
	if sep := path[1]; sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveEditorExecutableWithLookup(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	path, err := lookPath(expandUserPath(cmd))
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
