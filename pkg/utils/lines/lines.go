// Package lines reads text input one line at a time.
//
// Both '\n' and '\r' terminate a line, so a "\r\n" pair produces the text
// followed by an empty line. Terminators are never part of the yielded text
// and line length is not limited.
package lines

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Read returns a sequence over the lines of r. The sequence stops after the
// last line, or after yielding a non-nil error.
func Read(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		var current strings.Builder

		for {
			ch, err := br.ReadByte()
			if err != nil {
				if current.Len() > 0 && !yield(current.String(), nil) {
					return
				}
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}

			if ch == '\n' || ch == '\r' {
				if !yield(current.String(), nil) {
					return
				}
				current.Reset()
				continue
			}
			current.WriteByte(ch)
		}
	}
}
