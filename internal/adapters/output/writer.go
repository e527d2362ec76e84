// Package output provides adapters for writing application output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the semantic line roles. lipgloss degrades to plain text when
// the destination is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Writer implements domain.ConsolePrinter with colored line roles.
// All lines, including diagnostics, go to the same destination — the
// current CLI behavior writes everything to stdout.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterWithOutput creates a Writer with a custom output destination.
// This is useful for testing.
func NewWriterWithOutput(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) println(style lipgloss.Style, format string, args ...any) {
	// Write errors are intentionally ignored: there is no recovery action
	// for a failed console write.
	_, _ = fmt.Fprintln(w.out, style.Render(fmt.Sprintf(format, args...)))
}

// Plainf writes an unstyled line.
func (w *Writer) Plainf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}

// Successf writes a success line.
func (w *Writer) Successf(format string, args ...any) {
	w.println(successStyle, format, args...)
}

// Noticef writes an advisory line.
func (w *Writer) Noticef(format string, args ...any) {
	w.println(noticeStyle, format, args...)
}

// Errorf writes an error line.
func (w *Writer) Errorf(format string, args ...any) {
	w.println(errorStyle, format, args...)
}

// Infof writes an informational label line.
func (w *Writer) Infof(format string, args ...any) {
	w.println(infoStyle, format, args...)
}

// Headerf writes a section header line.
func (w *Writer) Headerf(format string, args ...any) {
	w.println(headerStyle, format, args...)
}
