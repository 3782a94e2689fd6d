package types

import "fmt"

// BoxPublic is a Curve25519 public key used with nacl/box.
type BoxPublic [32]byte

// Slice returns the key as a []byte.
func (p BoxPublic) Slice() []byte { return p[:] }

// BoxPrivate is a Curve25519 secret key used with nacl/box.
type BoxPrivate [32]byte

// Slice returns the key as a []byte.
func (k BoxPrivate) Slice() []byte { return k[:] }

// String never reveals the key material.
func (k BoxPrivate) String() string { return "BoxPrivate(redacted)" }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key (seed || public).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// String never reveals the key material.
func (k Ed25519Private) String() string { return "Ed25519Private(redacted)" }

// BoxKeyPair is the ephemeral encryption pair owned by a single token
// exchange. It has no JSON form so the secret can never end up on the wire.
type BoxKeyPair struct {
	Public BoxPublic  `json:"-"`
	Secret BoxPrivate `json:"-"`
}

// SigningKeyPair is a long-term identity pair. It is a different type from
// BoxKeyPair on purpose: the two are not interchangeable.
type SigningKeyPair struct {
	Public Ed25519Public
	Secret Ed25519Private
}

// BoxPublicFromBytes copies b into a BoxPublic.
func BoxPublicFromBytes(b []byte) (BoxPublic, error) {
	var out BoxPublic
	if len(b) != len(out) {
		return out, fmt.Errorf("box public key: want %d bytes, got %d", len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}
