package interfaces

import (
	"context"

	domaintypes "tokenbox/internal/domain/types"
)

// ExchangeService runs one token exchange end to end and returns the token.
type ExchangeService interface {
	GetToken(
		ctx context.Context,
		claims domaintypes.TokenPayload,
		comment string,
	) (string, error)
}

// IdentityService creates signing identities.
type IdentityService interface {
	GenerateIdentity(comment string) (domaintypes.Credentials, domaintypes.Fingerprint, error)
}
