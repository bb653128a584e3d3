//go:build windows

package launcher

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/windows"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
)

func platformLauncher(logger hclog.Logger) FolderLauncher {
	return &ShellVerbOpen{Verb: "open", Show: windows.SW_MAXIMIZE, Logger: logger}
}

// ShellVerbOpen asks the Windows shell to apply Verb to the folder, which
// opens it in Explorer.
type ShellVerbOpen struct {
	Verb   string
	Show   int32
	Logger hclog.Logger
}

// Launch hands the path to ShellExecute as a single file argument.
func (s *ShellVerbOpen) Launch(path string) error {
	if s.Logger != nil {
		s.Logger.Debug("🚀 Shell execute", "verb", s.Verb, "path", path)
	}

	verb, err := windows.UTF16PtrFromString(s.Verb)
	if err != nil {
		return fmt.Errorf("failed to convert verb to UTF-16: %w", err)
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("failed to convert path to UTF-16: %w", err)
	}

	if err := windows.ShellExecute(0, verb, file, nil, nil, s.Show); err != nil {
		return fmt.Errorf("%w: %w", ferrors.ErrLaunchFailed, err)
	}
	return nil
}

// Notice is NoticeWithPath whether or not the launch succeeded.
func (s *ShellVerbOpen) Notice() Notice { return NoticeWithPath }
