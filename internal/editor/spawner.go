package editor

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

var (
	commandBuilder = exec.Command
	openTTY        = func() (*os.File, error) { return os.OpenFile("/dev/tty", os.O_RDWR, 0) }
	useTTY         = runtime.GOOS != "windows"
)

// ExecSpawner starts the editor with os/exec. Outside Windows the child gets
// /dev/tty for all three streams when it can be opened; otherwise it
// inherits the process streams.
type ExecSpawner struct{}

var _ Spawner = ExecSpawner{}

func (ExecSpawner) Start(argv []string) (Process, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	cmd := commandBuilder(argv[0], argv[1:]...)

	var tty *os.File
	if useTTY {
		if f, err := openTTY(); err == nil {
			tty = f
		}
	}
	if tty != nil {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		if tty != nil {
			_ = tty.Close()
		}
		return nil, err
	}
	return &execProcess{cmd: cmd, tty: tty}, nil
}

type execProcess struct {
	cmd *exec.Cmd
	tty *os.File
}

func (p *execProcess) Wait() error {
	defer func() {
		if p.tty != nil {
			_ = p.tty.Close()
		}
	}()
	return p.cmd.Wait()
}
