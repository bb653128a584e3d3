// Package launcher opens folders in the desktop file manager.
//
// The platform mechanism is chosen once at startup by Select and is used
// through the FolderLauncher interface for the rest of the run.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/hashicorp/go-hclog"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
	"github.com/provide-io/folder-opener/pkg/utils/shellparse"
)

// EnvCommand names the variable that replaces the platform file manager.
const EnvCommand = "FOLDER_OPENER_COMMAND"

// Notice tells the caller which "opened" line to print after Launch.
type Notice int

const (
	NoticeNone     Notice = iota // print nothing
	NoticeWithPath               // print the opened message and the path
	NoticeBare                   // print the opened message alone
)

// FolderLauncher opens a single folder without waiting for the file manager.
type FolderLauncher interface {
	Launch(path string) error
	Notice() Notice
}

// ForkExecOpen starts Command with Args and the folder path as the final
// argument. The child is released immediately and its exit status is never
// collected.
type ForkExecOpen struct {
	Command string
	Args    []string
	Logger  hclog.Logger
}

// Launch starts the command. Only a failure to start is reported.
func (f *ForkExecOpen) Launch(path string) error {
	logger := f.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	argv := append(append([]string{}, f.Args...), path)
	cmd := exec.Command(f.Command, argv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("🚀 Spawning file manager", "command", shellparse.Join(append([]string{f.Command}, argv...)))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ferrors.ErrLaunchFailed, f.Command, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		logger.Debug("Failed to release child process", "pid", pid, "error", err)
	}
	logger.Trace("Child detached", "pid", pid)
	return nil
}

// Notice reports that spawned launches print nothing.
func (f *ForkExecOpen) Notice() Notice { return NoticeNone }

// Unsupported is used on platforms without a known file manager. It never
// opens anything.
type Unsupported struct {
	GOOS string
}

func (u *Unsupported) Launch(string) error {
	return fmt.Errorf("%w: %s", ferrors.ErrUnsupportedPlatform, u.GOOS)
}

func (u *Unsupported) Notice() Notice { return NoticeBare }

// Select returns the launcher for this run. A non-empty FOLDER_OPENER_COMMAND
// takes precedence over the platform default.
func Select(logger hclog.Logger) (FolderLauncher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if override := os.Getenv(EnvCommand); override != "" {
		argv, err := shellparse.Split(override)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvCommand, err)
		}
		if len(argv) > 0 {
			logger.Debug("Using file manager override", "command", shellparse.Join(argv))
			return &ForkExecOpen{Command: argv[0], Args: argv[1:], Logger: logger}, nil
		}
	}

	l := platformLauncher(logger)
	logger.Debug("Using platform file manager", "os", runtime.GOOS, "launcher", fmt.Sprintf("%T", l))
	return l, nil
}
