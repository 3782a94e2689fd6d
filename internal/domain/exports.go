package domain

import (
	interfaces "tokenbox/internal/domain/interfaces"
	types "tokenbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint    = types.Fingerprint
	ExchangeID     = types.ExchangeID
	BoxPublic      = types.BoxPublic
	BoxPrivate     = types.BoxPrivate
	Ed25519Public  = types.Ed25519Public
	Ed25519Private = types.Ed25519Private
	BoxKeyPair     = types.BoxKeyPair
	SigningKeyPair = types.SigningKeyPair
	Credentials    = types.Credentials
	TokenPayload   = types.TokenPayload
	TokenRequest   = types.TokenRequest
	TokenReply     = types.TokenReply
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	TokenTransport  = interfaces.TokenTransport
	Display         = interfaces.Display
	Clipboard       = interfaces.Clipboard
	ExchangeService = interfaces.ExchangeService
	IdentityService = interfaces.IdentityService
)

// BoxPublicFromBytes copies b into a BoxPublic, checking its length.
var BoxPublicFromBytes = types.BoxPublicFromBytes
