package identity

import (
	"crypto/ed25519"
	"fmt"
	"strings"
	"time"

	dropbox "github.com/dropbox/godropbox/errors"

	"github.com/sirupsen/logrus"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
)

// Service creates signing identities. Nothing is stored: the credentials
// are only returned to the caller.
type Service struct {
	now func() time.Time
}

// New returns an identity service.
func New() *Service { return &Service{now: time.Now} }

// DefaultComment labels a key pair generated at t.
func DefaultComment(t time.Time) string {
	return fmt.Sprintf("My new key pair %d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// GenerateIdentity creates a new Ed25519 key pair and returns it with a
// short fingerprint of the public key. An empty comment gets DefaultComment.
func (s *Service) GenerateIdentity(comment string) (domain.Credentials, domain.Fingerprint, error) {
	keys, err := crypto.GenerateSigningKeyPair()
	if err != nil {
		return domain.Credentials{}, "", err
	}
	if comment == "" {
		comment = DefaultComment(s.now())
	}
	fp := Fingerprint(keys.Public)

	logrus.WithFields(logrus.Fields{
		"fingerprint": fp,
	}).Debug("identity: Generated signing key pair")

	return domain.Credentials{Keys: keys, Comment: comment}, fp, nil
}

// Fingerprint returns a short fingerprint of a signing public key.
func Fingerprint(pub domain.Ed25519Public) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(pub.Slice()))
}

// ParsePublicKey accepts a hex public key or a whole credentials block and
// returns the signing public key it names.
func ParsePublicKey(text string) (domain.Ed25519Public, error) {
	var pub domain.Ed25519Public

	text = strings.TrimSpace(text)
	if i := strings.Index(text, "user:"); i >= 0 {
		text = text[i+len("user:"):]
		if j := strings.IndexByte(text, '%'); j >= 0 {
			text = text[:j]
		}
	}
	raw, err := crypto.HexDecode(text)
	if err != nil {
		return pub, dropbox.Wrap(err, "identity: Failed to decode public key")
	}
	if len(raw) != ed25519.PublicKeySize {
		return pub, dropbox.Newf("identity: Public key is %d bytes, want %d", len(raw), ed25519.PublicKeySize)
	}
	copy(pub[:], raw)
	return pub, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
