package interfaces

import (
	"context"

	domaintypes "tokenbox/internal/domain/types"
)

// TokenTransport is how we talk to the token issuer, all with context.
type TokenTransport interface {
	RequestToken(
		ctx context.Context,
		request domaintypes.TokenRequest,
	) (domaintypes.TokenReply, error)
}
