package exchange

import (
	"context"
	"errors"
	"sync"
	"time"

	dropbox "github.com/dropbox/godropbox/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/protocol/tokenbox"
	"tokenbox/internal/ui"
)

const (
	// DefaultTimeout abandons an exchange whose reply has not arrived.
	DefaultTimeout = 25 * time.Second
	// DefaultCountdown is the first number shown while waiting.
	DefaultCountdown = 16
)

// Config tunes a Service. Zero values pick the defaults.
type Config struct {
	Timeout   time.Duration
	Countdown int
	Tick      time.Duration
	Copy      bool
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Countdown <= 0 {
		c.Countdown = DefaultCountdown
	}
	if c.Tick <= 0 {
		c.Tick = time.Second
	}
	return c
}

// Service runs token exchanges against one issuer.
type Service struct {
	transport domain.TokenTransport
	display   domain.Display
	clipboard domain.Clipboard
	cfg       Config
}

// New returns an exchange service. A nil clipboard disables copying.
func New(t domain.TokenTransport, d domain.Display, c domain.Clipboard, cfg Config) *Service {
	if c == nil {
		c = ui.Discard{}
	}
	return &Service{transport: t, display: d, clipboard: c, cfg: cfg.withDefaults()}
}

// exchange is the state of one GetToken call.
type exchange struct {
	id   domain.ExchangeID
	keys domain.BoxKeyPair
	log  *logrus.Entry

	stop chan struct{}
	wg   sync.WaitGroup
}

// GetToken asks the issuer for a token with claims and returns the token
// text. Errors are *errortypes.TransportError, *errortypes.MalformedError or
// *errortypes.DecryptionError; none is retried.
func (s *Service) GetToken(ctx context.Context, claims domain.TokenPayload, comment string) (string, error) {
	keys, req, err := tokenbox.NewRequest(claims, comment)
	if err != nil {
		return "", dropbox.Wrap(err, "exchange: Failed to generate key pair")
	}
	ex := &exchange{
		id:   domain.ExchangeID(uuid.NewString()),
		keys: keys,
		stop: make(chan struct{}),
	}
	ex.log = logrus.WithFields(logrus.Fields{
		"exchange": ex.id,
		"pkey":     crypto.Fingerprint(keys.Public.Slice()),
	})
	defer crypto.WipeBoxKeyPair(&ex.keys)

	ex.log.WithFields(logrus.Fields{
		"url":     claims.URL,
		"timeout": s.cfg.Timeout,
	}).Info("exchange: Requesting token")

	s.startCountdown(ex)
	reply, err := s.submit(ctx, req)
	s.stopCountdown(ex)
	if err != nil {
		ex.log.WithFields(logrus.Fields{
			"kind":  errortypes.Kind(err),
			"error": errortypes.Message(err),
		}).Error("exchange: Token request failed")
		ex.log.Debug(err)
		s.display.Show("error: " + errortypes.Kind(err))
		return "", err
	}

	token, err := tokenbox.OpenToken(reply, ex.keys.Secret)
	if err != nil {
		ex.log.WithFields(logrus.Fields{
			"kind":  errortypes.Kind(err),
			"error": errortypes.Message(err),
		}).Error("exchange: Failed to open reply")
		ex.log.Debug(err)
		if !errortypes.IsDecryption(err) {
			s.display.Show("error: " + errortypes.Kind(err))
		}
		return "", err
	}

	s.display.Show(token)
	if s.cfg.Copy {
		if err := s.clipboard.Copy(token); err != nil {
			ex.log.WithFields(logrus.Fields{
				"error": errortypes.Message(err),
			}).Warn("exchange: Clipboard copy failed")
		}
	}
	ex.log.Info("exchange: Token received")
	return token, nil
}

type result struct {
	reply domain.TokenReply
	err   error
}

// submit sends req under the exchange deadline and makes sure every failure
// is classified. The deadline ends the exchange even if the transport
// ignores ctx; a reply arriving after it is dropped.
func (s *Service) submit(ctx context.Context, req domain.TokenRequest) (domain.TokenReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		reply, err := s.transport.RequestToken(ctx, req)
		done <- result{reply: reply, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		return domain.TokenReply{}, &errortypes.TransportError{
			DropboxError: dropbox.Wrap(ctx.Err(), "exchange: Token request abandoned"),
			Timeout:      errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
	}

	if res.err == nil {
		return res.reply, nil
	}
	if errortypes.IsTransport(res.err) || errortypes.IsMalformed(res.err) {
		return domain.TokenReply{}, res.err
	}
	return domain.TokenReply{}, &errortypes.TransportError{
		DropboxError: dropbox.Wrap(res.err, "exchange: Token request failed"),
		Timeout:      errors.Is(res.err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded),
	}
}

func (s *Service) startCountdown(ex *exchange) {
	n := s.cfg.Countdown
	s.display.Show(ui.Waiting(n))

	ticker := time.NewTicker(s.cfg.Tick)
	ex.wg.Add(1)
	go func() {
		defer ex.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ex.stop:
				return
			case <-ticker.C:
				if n > 0 {
					n--
				}
				s.display.Show(ui.Waiting(n))
			}
		}
	}()
}

func (s *Service) stopCountdown(ex *exchange) {
	close(ex.stop)
	ex.wg.Wait()
}

var _ domain.ExchangeService = (*Service)(nil)
