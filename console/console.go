package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Console writes human-readable status lines to a sink. It is passed
// explicitly into every operation that reports progress, so output can be
// captured in tests instead of going through a shared singleton.
type Console struct {
	out io.Writer
}

// New returns a console writing to the given sink.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Default returns a console writing to standard output.
func Default() *Console {
	return New(os.Stdout)
}

// Printf writes a plain formatted line.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Successf writes a green status line.
func (c *Console) Successf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf writes a red status line.
func (c *Console) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}
