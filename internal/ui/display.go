package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"tokenbox/internal/domain"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	tokenStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Terminal is a Display that rewrites one status line in place. The last
// shown text is kept so callers (and tests) can read it back.
type Terminal struct {
	mu   sync.Mutex
	out  io.Writer
	last string
	wide int
}

func NewTerminal(out io.Writer) *Terminal { return &Terminal{out: out} }

// Show replaces the status line with status.
func (t *Terminal) Show(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = status
	line := style(status).Render(status)
	pad := ""
	if n := len(status); n < t.wide {
		pad = strings.Repeat(" ", t.wide-n)
	} else {
		t.wide = n
	}
	fmt.Fprintf(t.out, "\r%s%s", line, pad)
}

// Done ends the status line.
func (t *Terminal) Done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.wide > 0 {
		fmt.Fprintln(t.out)
		t.wide = 0
	}
}

// Last returns the text most recently passed to Show.
func (t *Terminal) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

func style(status string) lipgloss.Style {
	switch {
	case strings.HasPrefix(status, "error"):
		return errorStyle
	case strings.HasPrefix(status, WaitingPrefix):
		return statusStyle
	default:
		return tokenStyle
	}
}

// WaitingPrefix starts every countdown status line.
const WaitingPrefix = "just a moment ... "

// Waiting formats the countdown status for n seconds left.
func Waiting(n int) string { return fmt.Sprintf("%s%d", WaitingPrefix, n) }

var _ domain.Display = (*Terminal)(nil)
