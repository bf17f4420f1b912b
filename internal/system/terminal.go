package system

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// TerminalDetector infers the preference from the terminal background color.
type TerminalDetector struct {
	isTerminal        func() bool
	hasDarkBackground func() bool
}

// NewTerminalDetector creates a detector that queries the controlling terminal.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal:        stdoutIsTerminal,
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
}

// Name implements Detector.
func (t *TerminalDetector) Name() string {
	return "terminal"
}

// Detect implements Detector. Without a terminal there is no answer.
func (t *TerminalDetector) Detect(context.Context) (bool, bool) {
	if !t.isTerminal() {
		return false, false
	}
	return t.hasDarkBackground(), true
}

// stdoutIsTerminal reports whether stdout is a TTY. Other character devices
// such as /dev/null do not count.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
