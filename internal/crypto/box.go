package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"tokenbox/internal/domain"
)

const (
	// NonceBytes is the nacl/box nonce length.
	NonceBytes = 24
	// BoxOverhead is the number of bytes Seal adds to a message.
	BoxOverhead = box.Overhead
)

// GenerateBoxKeyPair returns a fresh X25519 key pair for nacl/box.
func GenerateBoxKeyPair() (domain.BoxKeyPair, error) {
	return generateBoxKeyPair(rand.Reader)
}

func generateBoxKeyPair(r io.Reader) (domain.BoxKeyPair, error) {
	pub, priv, err := box.GenerateKey(r)
	if err != nil {
		return domain.BoxKeyPair{}, err
	}
	kp := domain.BoxKeyPair{Public: *pub, Secret: *priv}
	Wipe(priv[:])
	return kp, nil
}

// BoxPublicFromSecret derives the public half of a box secret key.
func BoxPublicFromSecret(secret domain.BoxPrivate) domain.BoxPublic {
	var pub, priv [32]byte
	priv = secret
	defer Wipe(priv[:])
	curve25519.ScalarBaseMult(&pub, &priv)
	return pub
}

// Seal boxes msg for recipient using sender's secret key.
func Seal(msg []byte, nonce *[NonceBytes]byte, recipient domain.BoxPublic, sender domain.BoxPrivate) []byte {
	pub := [32]byte(recipient)
	priv := [32]byte(sender)
	defer Wipe(priv[:])
	return box.Seal(nil, msg, nonce, &pub, &priv)
}

// Open authenticates and decrypts a box from sender. ok is false when
// authentication fails; out is then nil. A valid empty message yields a
// non-nil empty slice.
func Open(sealed []byte, nonce *[NonceBytes]byte, sender domain.BoxPublic, recipient domain.BoxPrivate) (out []byte, ok bool) {
	pub := [32]byte(sender)
	priv := [32]byte(recipient)
	defer Wipe(priv[:])
	out, ok = box.Open(make([]byte, 0, len(sealed)), sealed, nonce, &pub, &priv)
	if !ok {
		return nil, false
	}
	return out, true
}
