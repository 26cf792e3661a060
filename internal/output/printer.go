// Package output implements the logging and tree-rendering collaborator
// adapted from the teacher's internal/output package: class-gated
// writes to stdout/stderr plus a rendered file tree for the emitted
// cache.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Class gates one category of output line.
type Class int

const (
	// Required is always printed regardless of verbosity settings.
	Required Class = iota
	// Error goes to stderr.
	Error
	// Normal is the default run summary.
	Normal
	// Verbose is gated by the --verbose flag (spec.md §6).
	Verbose
	// Loops is gated by the --loops flag (spec.md §6) and carries the
	// cycle-detected / multi_cycle diagnostic lines from §4.5 and §7.
	Loops
)

// Printer writes class-gated lines to stdout or stderr.
type Printer struct {
	classes  map[Class]bool
	terminal io.Writer
	errors   io.Writer
}

// NewPrinter returns a Printer that only emits lines in include.
// Required is always implicitly included.
func NewPrinter(include []Class, terminal, errors io.Writer) Printer {
	p := Printer{
		classes:  map[Class]bool{Required: true},
		terminal: terminal,
		errors:   errors,
	}
	for _, c := range include {
		p.classes[c] = true
	}
	return p
}

// Out writes format to the class's destination if that class is enabled.
func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := p.terminal
	if class == Error {
		target = p.errors
	}
	fmt.Fprintf(target, format, values...)
}

// IsInteractiveTerminal reports whether stdout is attached to a
// terminal, used to decide whether to emit a trailing VisualFileTree
// even when not explicitly requested by --verbose.
func IsInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
