package issuer

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"time"

	dropbox "github.com/dropbox/godropbox/errors"
	"github.com/gbrlsnchs/jwt/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/protocol/tokenbox"
)

// jtiAttempts bounds the search for an unused JWT id.
const jtiAttempts = 8

// Issuer mints and boxes tokens.
type Issuer struct {
	name      string
	maxExpiry time.Duration
	signing   domain.SigningKeyPair
	box       domain.BoxKeyPair
	nonces    *nonceCache
	metrics   *metrics
	now       func() time.Time
}

// New builds an Issuer from a validated configuration. Counters are
// registered with reg when it is not nil.
func New(cfg *Config, reg prometheus.Registerer) (*Issuer, error) {
	signing, err := cfg.Keys.signing()
	if err != nil {
		return nil, err
	}
	boxKeys, err := cfg.Keys.box()
	if err != nil {
		return nil, err
	}
	return &Issuer{
		name:      cfg.Server.Name,
		maxExpiry: cfg.Server.MaxExpiry(),
		signing:   signing,
		box:       boxKeys,
		nonces:    newNonceCache(time.Hour),
		metrics:   newMetrics(reg),
		now:       time.Now,
	}, nil
}

// Name is the iss claim of issued tokens.
func (i *Issuer) Name() string { return i.name }

// BoxPublic is the key replies are sealed with.
func (i *Issuer) BoxPublic() domain.BoxPublic { return i.box.Public }

// SigningPublic verifies issued tokens.
func (i *Issuer) SigningPublic() domain.Ed25519Public { return i.signing.Public }

// Issue signs the claims of req and seals the token for the requester.
// Requests the issuer refuses are *errortypes.RequestError.
func (i *Issuer) Issue(req domain.TokenRequest, remote string) (domain.TokenReply, error) {
	log := logrus.WithFields(logrus.Fields{"remote": remote})

	client, err := tokenbox.ParseClientKey(req)
	if err != nil {
		i.metrics.bad.Inc()
		return domain.TokenReply{}, &errortypes.RequestError{
			DropboxError: dropbox.Wrap(err, "issuer: Bad client key"),
		}
	}
	if req.Payload == nil {
		i.metrics.bad.Inc()
		return domain.TokenReply{}, &errortypes.RequestError{
			DropboxError: dropbox.New("issuer: Request has no payload"),
		}
	}

	jti, err := i.freshJTI()
	if err != nil {
		i.metrics.bad.Inc()
		return domain.TokenReply{}, err
	}

	payload := *req.Payload
	payload.Issuer = i.name
	payload.JWTID = jti
	limit := uint32(i.now().Add(i.maxExpiry).Unix())
	if payload.ExpirationTime == 0 || payload.ExpirationTime > limit {
		log.WithFields(logrus.Fields{
			"jti":       jti,
			"requested": payload.ExpirationTime,
		}).Info("issuer: Clamping token expiry")
		payload.ExpirationTime = limit
	}

	token, err := Sign(&payload, i.signing.Secret)
	if err != nil {
		i.metrics.bad.Inc()
		return domain.TokenReply{}, dropbox.Wrap(err, "issuer: Failed to sign token")
	}

	reply, err := tokenbox.SealResponse(token, jti, client, i.box)
	if err != nil {
		i.metrics.bad.Inc()
		return domain.TokenReply{}, err
	}

	i.metrics.issued.Inc()
	log.WithFields(logrus.Fields{
		"jti": jti,
		"exp": time.Unix(int64(payload.ExpirationTime), 0).UTC().Format("2006-01-02"),
		"url": payload.URL,
	}).Info("issuer: Issued token")
	return reply, nil
}

// freshJTI returns a random 24 character id that has not been used as a
// nonce recently.
func (i *Issuer) freshJTI() (string, error) {
	for n := 0; n < jtiAttempts; n++ {
		var tmp [18]byte
		if _, err := rand.Read(tmp[:]); err != nil {
			return "", dropbox.Wrap(err, "issuer: Failed to read random")
		}
		jti := base64.RawURLEncoding.EncodeToString(tmp[:])
		if i.nonces.Add(jti) {
			return jti, nil
		}
	}
	return "", dropbox.New("issuer: No unused nonce found")
}

// Sign returns payload as an Ed25519 JWT.
func Sign(payload *domain.TokenPayload, secret domain.Ed25519Private) ([]byte, error) {
	algo := jwt.NewEd25519(jwt.Ed25519PrivateKey(ed25519.PrivateKey(secret[:])))
	return jwt.Sign(payload, algo)
}

// Verify checks token against pub and returns its claims.
func Verify(token []byte, pub domain.Ed25519Public) (*domain.TokenPayload, bool) {
	payload := &domain.TokenPayload{}
	algo := jwt.NewEd25519(jwt.Ed25519PublicKey(ed25519.PublicKey(pub[:])))
	if _, err := jwt.Verify(token, algo, payload); err != nil {
		return &domain.TokenPayload{}, false
	}
	return payload, true
}
