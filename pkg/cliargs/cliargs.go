// Package cliargs parses the folder-opener command line.
//
// Parsing happens in two passes. LanguageID runs first so the message
// catalog can be loaded; Parse runs afterwards, once errors can be reported
// in the chosen language.
package cliargs

import (
	"fmt"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
)

const (
	DefaultLanguage = "EN"

	flagLanguage = "-language"
	flagSilent   = "-silent"
	flagVerbose  = "-verbose"
)

// Options holds the settings taken from the command line.
type Options struct {
	Verbose  bool
	Language string
}

// UnknownArgumentError reports the first token Parse did not recognize.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", ferrors.ErrUnknownArgument, e.Token)
}

func (e *UnknownArgumentError) Unwrap() error { return ferrors.ErrUnknownArgument }

// LanguageID returns the value of the first "-language <value>" pair, or
// DefaultLanguage when there is none. A trailing "-language" without a value
// is ignored here.
func LanguageID(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == flagLanguage && i+1 < len(args) {
			return args[i+1]
		}
	}
	return DefaultLanguage
}

// Parse reads the verbosity flags. "-language <value>" pairs are skipped;
// any other token stops parsing with an *UnknownArgumentError.
func Parse(args []string) (Options, error) {
	opts := Options{
		Verbose:  true,
		Language: LanguageID(args),
	}

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == flagSilent:
			opts.Verbose = false
		case args[i] == flagVerbose:
			opts.Verbose = true
		case args[i] == flagLanguage && i+1 < len(args):
			i++
		default:
			return opts, &UnknownArgumentError{Token: args[i]}
		}
	}

	return opts, nil
}
