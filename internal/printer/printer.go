package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Printer writes CLI output. Stdout and Stderr default to the process streams.
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer
}

func New() *Printer {
	return &Printer{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	green.Fprintf(p.Stdout, "✓ %s", fmt.Sprintf(format, a...))
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Stdout, format, a...)
}

// Heading prints a cyan section title.
func (p *Printer) Heading(format string, a ...any) {
	cyan.Fprintf(p.Stdout, format, a...)
}

func (p *Printer) Warning(format string, a ...any) {
	yellow.Fprintf(p.Stdout, "⚠️  %s", fmt.Sprintf(format, a...))
}

// Error prints a titled error with its details to stderr and returns an
// error carrying only the title, for cobra to exit non-zero on.
func (p *Printer) Error(title string, details []string) error {
	red.Fprintf(p.Stderr, "%s\n", title)
	if len(details) > 0 {
		fmt.Fprintf(p.Stderr, "\n  - %s\n", strings.Join(details, "\n  - "))
	}
	return fmt.Errorf("%s", title)
}
