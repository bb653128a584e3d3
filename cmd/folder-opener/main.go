package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/folder-opener/internal/workenv"
	"github.com/provide-io/folder-opener/pkg/folderopener"
	"github.com/provide-io/folder-opener/pkg/logging"
)

const version = "1.0.0"

func init() {
	// Allow starting from Explorer with a double click.
	cobra.MousetrapHelpText = ""
}

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// newRootCmd builds the root command. The run's exit code is stored in
// *exitCode once the command has run.
func newRootCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "folder-opener [-language <ID>] [-silent|-verbose]",
		Short: "Open the folders listed in folder_opener.folders",
		Long: `Open every folder listed in folder_opener.folders in the desktop file
manager, printing status messages from folder_opener.languages.`,
		// Single-dash options are parsed by cliargs, not by cobra.
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			*exitCode = openFolders(cmd.OutOrStdout(), args)
		},
	}
}

// isCompletionRequest reports tokens cobra always routes to its hidden
// shell completion command.
func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// execute runs the root command for args and returns the exit code.
func execute(args []string, out io.Writer) (int, error) {
	exitCode := folderopener.ExitFailure
	cmd := newRootCmd(&exitCode)
	cmd.SetOut(out)

	if len(args) > 0 && isCompletionRequest(args[0]) {
		cmd.Run(cmd, args)
		return exitCode, nil
	}

	// A non-nil slice keeps cobra from falling back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		return folderopener.ExitFailure, err
	}
	return exitCode, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(folderopener.ExitPanic)
		}
	}()

	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("folder-opener %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	setupConsole()

	code, err := execute(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func openFolders(out io.Writer, args []string) int {
	logOpts := logging.OptionsFromEnv()
	output, closeOutput := logging.OpenOutput(logOpts)
	defer closeOutput()

	logger := logging.WithRunID(logging.New("folder-opener", logOpts, output))
	logger.Info("folder-opener starting", "version", version, "args", args)

	paths := workenv.FromEnv()
	logger.Debug("📁 Data files", "languages", paths.Languages, "folders", paths.FolderList)

	runner := &folderopener.Runner{
		Stdout: out,
		Paths:  paths,
		Logger: logger,
	}
	code := runner.Run(args)
	logger.Info("folder-opener finished", "exit_code", code)
	return code
}
