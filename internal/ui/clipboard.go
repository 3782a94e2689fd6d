package ui

import (
	"io"

	"github.com/aymanbagabas/go-osc52/v2"

	"tokenbox/internal/domain"
)

// OSC52 copies text to the system clipboard through the terminal's OSC52
// escape sequence, which also works over SSH.
type OSC52 struct {
	out    io.Writer
	screen bool
}

// NewOSC52 writes sequences to out. Set screen when running inside GNU
// screen, which needs the sequence wrapped.
func NewOSC52(out io.Writer, screen bool) *OSC52 {
	return &OSC52{out: out, screen: screen}
}

// Copy puts text on the clipboard.
func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	if c.screen {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.out)
	return err
}

// Discard is a Clipboard that drops everything.
type Discard struct{}

func (Discard) Copy(string) error { return nil }

var (
	_ domain.Clipboard = (*OSC52)(nil)
	_ domain.Clipboard = Discard{}
)
