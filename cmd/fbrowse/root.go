package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/fbrowse/internal/app"
	"github.com/kk-code-lab/fbrowse/internal/config"
	"github.com/kk-code-lab/fbrowse/internal/editor"
	"github.com/kk-code-lab/fbrowse/internal/logging"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	isTerminal = term.IsTerminal
	newScreen  = tcell.NewScreen
)

var errNotTerminal = errors.New("standard input is not a terminal")

func newRootCmd() *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "fbrowse [PATH]",
		Short: "Browse directories in the terminal and open files in your editor",
		Long: `fbrowse lists a directory in the terminal. Move with the arrow keys,
press Enter to open a directory or edit a file, Backspace to go up,
h to show or hide dotfiles and q to quit.

The editor is taken from --editor, $FBROWSE_EDITOR, $VISUAL or $EDITOR,
falling back to the first of nvim, vim, nano and vi found on PATH.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.StartPath = args[0]
			}
			return run(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.ShowHidden, "all", "a", false, "show hidden files")
	cmd.Flags().StringVarP(&flags.EditorCommand, "editor", "e", "", "editor command, e.g. \"code --wait\"")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func run(flags config.Config) error {
	cfg, err := config.Resolve(flags)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		OutputPath: cfg.LogFile,
	}); err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer func() {
		_ = logging.Sync()
	}()
	logger := logging.L()

	// A bad starting directory is reported before the terminal is taken over.
	state, err := statepkg.NewBrowserState(nil, cfg.StartPath, cfg.ShowHidden)
	if err != nil {
		logger.Error("cannot load starting directory", zap.String("path", cfg.StartPath), zap.Error(err))
		return err
	}

	if !isTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	editorCmd, ok := editor.Detect(cfg.EditorCommand)
	if !ok {
		logger.Warn("no editor found; opening files will fail")
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("cannot create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cannot initialise terminal: %w", err)
	}

	app := apppkg.NewApplication(screen, state, apppkg.Options{
		EditorCommand: editorCmd,
		Logger:        logger,
	})
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}
