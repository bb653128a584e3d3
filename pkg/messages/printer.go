package messages

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes catalog messages to the user. Notices are dropped when
// Verbose is false; Always lines are not.
type Printer struct {
	Out     io.Writer
	Catalog *Catalog
	Verbose bool
}

// Notice prints message id followed by the extra words, space separated.
func (p *Printer) Notice(id MessageID, extra ...string) {
	if !p.Verbose {
		return
	}
	p.Always(p.compose(id, extra))
}

// Always prints text regardless of verbosity.
func (p *Printer) Always(text string) {
	fmt.Fprintln(p.Out, text)
}

// AlwaysMessage prints message id and extra words regardless of verbosity.
func (p *Printer) AlwaysMessage(id MessageID, extra ...string) {
	p.Always(p.compose(id, extra))
}

func (p *Printer) compose(id MessageID, extra []string) string {
	parts := append([]string{p.Catalog.Text(id)}, extra...)
	return strings.Join(parts, " ")
}
