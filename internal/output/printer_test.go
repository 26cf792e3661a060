package output

import (
	"bytes"
	"testing"
)

func TestPrinterGatesClassesNotIncluded(t *testing.T) {
	var terminal, errors bytes.Buffer
	p := NewPrinter([]Class{Normal}, &terminal, &errors)

	p.Out(Verbose, "should not appear")
	if terminal.Len() != 0 {
		t.Fatalf("expected Verbose to be gated out, got %q", terminal.String())
	}

	p.Out(Normal, "hello %d", 1)
	if terminal.String() != "hello 1" {
		t.Fatalf("expected Normal output, got %q", terminal.String())
	}
}

func TestPrinterAlwaysIncludesRequired(t *testing.T) {
	var terminal, errors bytes.Buffer
	p := NewPrinter(nil, &terminal, &errors)

	p.Out(Required, "must appear")
	if terminal.String() != "must appear" {
		t.Fatalf("expected Required to print regardless of include list, got %q", terminal.String())
	}
}

func TestPrinterRoutesErrorClassToErrorWriter(t *testing.T) {
	var terminal, errors bytes.Buffer
	p := NewPrinter([]Class{Error}, &terminal, &errors)

	p.Out(Error, "boom")
	if errors.String() != "boom" {
		t.Fatalf("expected Error class routed to the error writer, got %q", errors.String())
	}
	if terminal.Len() != 0 {
		t.Fatalf("expected nothing written to the terminal writer, got %q", terminal.String())
	}
}
