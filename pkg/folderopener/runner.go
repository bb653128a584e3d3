package folderopener

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/folder-opener/internal/workenv"
	"github.com/provide-io/folder-opener/pkg/cliargs"
	ferrors "github.com/provide-io/folder-opener/pkg/errors"
	"github.com/provide-io/folder-opener/pkg/launcher"
	"github.com/provide-io/folder-opener/pkg/messages"
	"github.com/provide-io/folder-opener/pkg/utils/lines"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitPanic   = 101
)

// Runner executes one folder-opener run.
type Runner struct {
	Stdout   io.Writer
	Paths    workenv.Paths
	Launcher launcher.FolderLauncher
	Logger   hclog.Logger

	// openList opens the folder list; nil means os.Open.
	openList func(name string) (io.ReadCloser, error)
}

// Run processes args and the data files and returns the process exit code.
func (r *Runner) Run(args []string) int {
	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	language := cliargs.LanguageID(args)
	logger.Debug("🌐 Loading messages", "language", language, "path", r.Paths.Languages)

	catalog, err := messages.LoadFile(r.Paths.Languages, language, logger.Named("messages"))
	if err != nil {
		logger.Error("❌ Failed to load messages", "language", language, "error", err)
		printer := &messages.Printer{Out: out}
		printer.Always(loadFailureText(err))
		return ExitFailure
	}

	opts, err := cliargs.Parse(args)
	printer := &messages.Printer{Out: out, Catalog: catalog, Verbose: opts.Verbose}
	if err != nil {
		var unknown *cliargs.UnknownArgumentError
		if errors.As(err, &unknown) {
			printer.AlwaysMessage(messages.MsgUnknownArgument, unknown.Token)
		}
		logger.Error("❌ Invalid arguments", "error", err)
		return ExitFailure
	}
	logger.Debug("Options parsed", "verbose", opts.Verbose, "language", opts.Language)

	l := r.Launcher
	if l == nil {
		if l, err = launcher.Select(logger.Named("launcher")); err != nil {
			logger.Error("❌ Failed to select file manager", "error", err)
			return ExitFailure
		}
	}

	opener := &Opener{Launcher: l, Printer: printer, Logger: logger}
	openList := r.openList
	if openList == nil {
		openList = openFile
	}

	if err := openAll(openList, r.Paths.FolderList, opener, logger); err != nil {
		if errors.Is(err, ferrors.ErrFolderListMissing) {
			printer.Notice(messages.MsgFolderListMissing)
		}
		logger.Error("❌ Failed to process folder list", "error", err)
		return ExitFailure
	}

	return ExitOK
}

// openAll opens every non-empty line of the folder list in order.
func openAll(openList func(string) (io.ReadCloser, error), path string, opener *Opener, logger hclog.Logger) error {
	file, err := openList(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ferrors.ErrFolderListMissing, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Debug("Failed to close folder list", "path", path, "error", err)
		}
	}()

	count := 0
	for line, err := range lines.Read(file) {
		if err != nil {
			logger.Warn("⚠️ Stopped reading folder list", "path", path, "error", err)
			break
		}
		if line == "" {
			continue
		}

		count++
		if err := opener.Open(line); err != nil {
			logger.Debug("Skipped folder", "path", line, "error", err)
		}
	}

	logger.Debug("📂 Folder list processed", "folders", count)
	if count == 0 {
		opener.Printer.Notice(messages.MsgNoFolders)
	}
	return nil
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// loadFailureText returns the line printed when messages cannot be loaded.
func loadFailureText(err error) string {
	var missing *messages.MissingMessageError
	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.Is(err, ferrors.ErrLanguageFileMissing):
		return "Error! Could not open language file."
	default:
		return fmt.Sprintf("Error! %v", err)
	}
}
