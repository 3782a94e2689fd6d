package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"tokenbox/internal/domain"
)

// GenerateSigningKeyPair returns a new Ed25519 identity key pair.
func GenerateSigningKeyPair() (domain.SigningKeyPair, error) {
	var kp domain.SigningKeyPair
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return kp, err
	}
	copy(kp.Public[:], pk)
	copy(kp.Secret[:], sk)
	Wipe(sk)
	return kp, nil
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv domain.Ed25519Private, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
