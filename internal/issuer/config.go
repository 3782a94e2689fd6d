package issuer

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
)

const (
	defaultListen        = "127.0.0.1:8085"
	defaultIssuerName    = "_9sh"
	defaultMaxExpiryDays = 365
	defaultLogLevel      = "info"
)

// Config is the issuer configuration, read from TOML.
type Config struct {
	Server  *Server
	Keys    *Keys
	Logging *Logging
}

// Server holds listener and policy settings.
type Server struct {
	// Listen is the host:port the HTTP server binds.
	Listen string

	// Name is written into the iss claim of every token.
	Name string

	// MaxExpiryDays caps how far in the future a token may expire.
	MaxExpiryDays int

	// ReplyDelayMillis holds every reply back, to slow down scrapers.
	ReplyDelayMillis int
}

// Keys holds the issuer secrets, hex encoded.
type Keys struct {
	// SigningKey is the 64 byte Ed25519 secret used for JWTs.
	SigningKey string

	// BoxKey is the 32 byte X25519 secret used to seal replies.
	BoxKey string
}

// Logging configures logrus.
type Logging struct {
	Level string
}

func (s *Server) applyDefaults() {
	if s.Listen == "" {
		s.Listen = defaultListen
	}
	if s.Name == "" {
		s.Name = defaultIssuerName
	}
	if s.MaxExpiryDays <= 0 {
		s.MaxExpiryDays = defaultMaxExpiryDays
	}
}

// MaxExpiry is MaxExpiryDays as a duration.
func (s *Server) MaxExpiry() time.Duration {
	return time.Duration(s.MaxExpiryDays) * 24 * time.Hour
}

// ReplyDelay is ReplyDelayMillis as a duration.
func (s *Server) ReplyDelay() time.Duration {
	return time.Duration(s.ReplyDelayMillis) * time.Millisecond
}

// FixupAndValidate fills in defaults and checks the keys.
func (c *Config) FixupAndValidate() error {
	if c.Server == nil {
		c.Server = &Server{}
	}
	c.Server.applyDefaults()
	if c.Logging == nil {
		c.Logging = &Logging{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Keys == nil {
		return errors.New("config: No Keys block was present")
	}
	if _, err := c.Keys.signing(); err != nil {
		return err
	}
	if _, err := c.Keys.box(); err != nil {
		return err
	}
	return nil
}

func (k *Keys) signing() (domain.SigningKeyPair, error) {
	var kp domain.SigningKeyPair
	raw, err := crypto.HexDecode(k.SigningKey)
	if err != nil {
		return kp, fmt.Errorf("config: Keys.SigningKey: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return kp, fmt.Errorf("config: Keys.SigningKey: want %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	copy(kp.Secret[:], raw)
	copy(kp.Public[:], ed25519.PrivateKey(raw).Public().(ed25519.PublicKey))
	return kp, nil
}

func (k *Keys) box() (domain.BoxKeyPair, error) {
	var kp domain.BoxKeyPair
	raw, err := crypto.HexDecode(k.BoxKey)
	if err != nil {
		return kp, fmt.Errorf("config: Keys.BoxKey: %w", err)
	}
	if len(raw) != len(kp.Secret) {
		return kp, fmt.Errorf("config: Keys.BoxKey: want %d bytes, got %d", len(kp.Secret), len(raw))
	}
	copy(kp.Secret[:], raw)
	kp.Public = crypto.BoxPublicFromSecret(kp.Secret)
	return kp, nil
}

// Load parses and validates a TOML configuration.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// Generate returns a configuration with fresh keys and default settings.
func Generate() (*Config, error) {
	signing, err := crypto.GenerateSigningKeyPair()
	if err != nil {
		return nil, err
	}
	boxKeys, err := crypto.GenerateBoxKeyPair()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Server: &Server{},
		Keys: &Keys{
			SigningKey: crypto.HexEncode(signing.Secret[:]),
			BoxKey:     crypto.HexEncode(boxKeys.Secret[:]),
		},
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
