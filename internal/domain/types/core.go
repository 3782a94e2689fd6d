package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ExchangeID identifies one token exchange in logs.
type ExchangeID string

// String returns the string form of the exchange identifier.
func (id ExchangeID) String() string { return string(id) }
