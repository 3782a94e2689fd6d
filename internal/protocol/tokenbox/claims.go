package tokenbox

import (
	"time"

	"tokenbox/internal/domain"
)

// Defaults for a request when the caller does not override them.
const (
	DefaultIssuer        = "none"
	DefaultJWTID         = "none"
	DefaultInput         = 32.0 // bytes per sec
	DefaultOutput        = 32.0 // bytes per sec
	DefaultSubscriptions = 4.0
	DefaultConnections   = 2.0
	DefaultURL           = "knotfree.net"
	DefaultComment       = "My token"
	DefaultLifetime      = 365 * 24 * time.Hour
)

// DefaultClaims returns the default claims with an expiry DefaultLifetime
// after now.
func DefaultClaims(now time.Time) domain.TokenPayload {
	return domain.TokenPayload{
		ExpirationTime: uint32(now.Add(DefaultLifetime).Unix()),
		Issuer:         DefaultIssuer,
		JWTID:          DefaultJWTID,
		Input:          DefaultInput,
		Output:         DefaultOutput,
		Subscriptions:  DefaultSubscriptions,
		Connections:    DefaultConnections,
		URL:            DefaultURL,
	}
}
