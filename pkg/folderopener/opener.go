// Package folderopener opens every folder named in the folder list.
package folderopener

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
	"github.com/provide-io/folder-opener/pkg/launcher"
	"github.com/provide-io/folder-opener/pkg/messages"
)

// unsafeChars are rejected anywhere in a folder path.
const unsafeChars = "&?*|<>;"

// Sanitize rejects paths containing shell metacharacters.
func Sanitize(path string) error {
	if i := strings.IndexAny(path, unsafeChars); i >= 0 {
		return fmt.Errorf("%w: %q at offset %d", ferrors.ErrUnsafePath, path[i], i)
	}
	return nil
}

// FolderExists reports whether path is an existing directory.
func FolderExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Opener opens single folders and reports the outcome through Printer.
type Opener struct {
	Launcher launcher.FolderLauncher
	Printer  *messages.Printer
	Logger   hclog.Logger
}

// Open validates path and hands it to the launcher. The returned error is
// informational; callers continue with the next folder.
func (o *Opener) Open(path string) error {
	if err := Sanitize(path); err != nil {
		o.Printer.Notice(messages.MsgInvalidInput)
		return err
	}

	if !FolderExists(path) {
		o.Printer.Notice(messages.MsgFolderMissing, path)
		return fmt.Errorf("%w: %s", ferrors.ErrFolderMissing, path)
	}

	err := o.Launcher.Launch(path)
	if err != nil {
		o.logger().Warn("⚠️ Failed to open folder", "path", path, "error", err)
	}

	// The "opened" line depends only on the launcher, not on err.
	switch o.Launcher.Notice() {
	case launcher.NoticeWithPath:
		o.Printer.Notice(messages.MsgOpened, path)
	case launcher.NoticeBare:
		o.Printer.Notice(messages.MsgOpened)
	}

	return err
}

func (o *Opener) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}
