// Package shellparse splits and joins command lines using POSIX shell word
// rules. It is used to read the FOLDER_OPENER_COMMAND override and to render
// launch commands in log output; nothing here ever invokes a shell.
package shellparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

type quoteState int

const (
	unquoted quoteState = iota
	inSingle
	inDouble
)

// Split parses a command string into arguments.
//
//   - whitespace separates words outside quotes
//   - single quotes keep everything literal
//   - double quotes keep everything literal except \" \\ \$ and \`
//   - a backslash outside quotes escapes the next character
//
// An empty quoted string ('' or "") produces an empty argument.
func Split(input string) ([]string, error) {
	args := []string{}
	var word strings.Builder
	state := unquoted
	inWord := false

	// Runes are copied as their original bytes, so invalid UTF-8 passes
	// through unchanged.
	for i := 0; i < len(input); {
		ch, size := utf8.DecodeRuneInString(input[i:])
		raw := input[i : i+size]
		i += size

		switch state {
		case inSingle:
			if ch == '\'' {
				state = unquoted
			} else {
				word.WriteString(raw)
			}

		case inDouble:
			switch ch {
			case '"':
				state = unquoted
			case '\\':
				if i >= len(input) {
					return nil, ErrTrailingEscape
				}
				next, n := utf8.DecodeRuneInString(input[i:])
				if !strings.ContainsRune("\"\\$`", next) {
					word.WriteByte('\\')
				}
				word.WriteString(input[i : i+n])
				i += n
			default:
				word.WriteString(raw)
			}

		default:
			switch {
			case ch == '\\':
				if i >= len(input) {
					return nil, ErrTrailingEscape
				}
				_, n := utf8.DecodeRuneInString(input[i:])
				word.WriteString(input[i : i+n])
				i += n
				inWord = true
			case ch == '\'':
				state = inSingle
				inWord = true
			case ch == '"':
				state = inDouble
				inWord = true
			case unicode.IsSpace(ch):
				if inWord {
					args = append(args, word.String())
					word.Reset()
					inWord = false
				}
			default:
				word.WriteString(raw)
				inWord = true
			}
		}
	}

	switch state {
	case inSingle:
		return nil, fmt.Errorf("%w: unclosed single quote", ErrUnclosedQuote)
	case inDouble:
		return nil, fmt.Errorf("%w: unclosed double quote", ErrUnclosedQuote)
	}

	if inWord {
		args = append(args, word.String())
	}
	return args, nil
}

// Join renders args as a single command string, quoting where needed so that
// Split(Join(args)) returns args.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quote(arg)
	}
	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsFunc(arg, needsQuoting) {
		return arg
	}
	if !strings.ContainsRune(arg, '\'') {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		if strings.IndexByte("\"\\$`", arg[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(arg[i])
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(ch rune) bool {
	return unicode.IsSpace(ch) || strings.ContainsRune("'\"\\$`", ch)
}
