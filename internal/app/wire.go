package app

import (
	"os"

	"tokenbox/internal/domain"
	"tokenbox/internal/services/exchange"
	"tokenbox/internal/services/identity"
	"tokenbox/internal/transport"
	"tokenbox/internal/ui"
)

// Wire bundles the collaborators and services for the CLI.
type Wire struct {
	Display   *ui.Terminal
	Clipboard domain.Clipboard
	Exchange  domain.ExchangeService
	Identity  domain.IdentityService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	// A nil cfg.HTTP falls back to http.DefaultClient
	tr := transport.NewHTTP(cfg.IssuerURL, cfg.HTTP)
	display := ui.NewTerminal(out)
	clip := ui.NewOSC52(out, os.Getenv("TERM") == "screen" || os.Getenv("STY") != "")

	exchangeSvc := exchange.New(tr, display, clip, exchange.Config{
		Timeout: cfg.Timeout,
		Copy:    cfg.Copy,
	})

	return &Wire{
		Display:   display,
		Clipboard: clip,
		Exchange:  exchangeSvc,
		Identity:  identity.New(),
	}, nil
}
