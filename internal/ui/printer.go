// Package ui prints the colored, emoji-prefixed status lines that narrate a
// setup run.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Line prefixes.
const (
	iconStatus  = "🚀"
	iconSuccess = "✅"
	iconWarning = "⚠️ "
	iconError   = "❌"
)

// Colors used for plain hint lines.
var (
	Blue   termenv.Color = termenv.ANSIBrightBlue
	Green  termenv.Color = termenv.ANSIBrightGreen
	Yellow termenv.Color = termenv.ANSIBrightYellow
	Red    termenv.Color = termenv.ANSIBrightRed
)

// Printer writes status lines to a terminal or any other writer.
type Printer struct {
	out *termenv.Output
}

// New returns a Printer for w. Colors follow the terminal's capabilities and
// NO_COLOR; noColor forces plain output.
func New(w io.Writer, noColor bool) *Printer {
	opts := []termenv.OutputOption{termenv.WithColorCache(true)}
	if noColor || os.Getenv("NO_COLOR") != "" {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Plain returns a Printer that never emits escape sequences. Used by tests.
func Plain(w io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (p *Printer) line(c termenv.Color, icon, msg string) {
	s := p.out.String(icon + " " + msg).Foreground(c).Bold()
	fmt.Fprintln(p.out, s.String())
}

// Status prints a progress line.
func (p *Printer) Status(format string, args ...any) {
	p.line(Blue, iconStatus, fmt.Sprintf(format, args...))
}

// Success prints a completed-step line.
func (p *Printer) Success(format string, args ...any) {
	p.line(Green, iconSuccess, fmt.Sprintf(format, args...))
}

// Warning prints a non-fatal problem.
func (p *Printer) Warning(format string, args ...any) {
	p.line(Yellow, iconWarning, fmt.Sprintf(format, args...))
}

// Error prints a failure line. Printing an error does not stop anything.
func (p *Printer) Error(format string, args ...any) {
	p.line(Red, iconError, fmt.Sprintf(format, args...))
}

// Hint prints text in color c without icon or bold.
func (p *Printer) Hint(c termenv.Color, text string) {
	fmt.Fprintln(p.out, p.out.String(text).Foreground(c).String())
}

// Command prints a cheat-sheet entry: the command padded and colored,
// followed by a comment.
func (p *Printer) Command(cmd, comment string) {
	padded := fmt.Sprintf("%-19s", cmd)
	fmt.Fprintf(p.out, "%s# %s\n", p.out.String(padded).Foreground(Blue).String(), comment)
}

// Println prints an unstyled line.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}
