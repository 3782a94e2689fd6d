package app

import (
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"tokenbox/internal/domain"
	"tokenbox/internal/protocol/tokenbox"
	"tokenbox/internal/services/exchange"
)

// Viper keys.
const (
	KeyIssuerURL     = "issuer.url"
	KeyTimeout       = "exchange.timeout"
	KeyCopy          = "exchange.copy"
	KeyLifetime      = "claims.lifetime"
	KeyIssuer        = "claims.iss"
	KeyJWTID         = "claims.jti"
	KeyInput         = "claims.in"
	KeyOutput        = "claims.out"
	KeySubscriptions = "claims.su"
	KeyConnections   = "claims.co"
	KeyURL           = "claims.url"
	KeyComment       = "comment"
	KeyLogLevel      = "log.level"
)

const (
	// DefaultIssuerURL is a tokensrv on its default listen address.
	DefaultIssuerURL = "http://127.0.0.1:8085"
	// EnvPrefix namespaces environment overrides, e.g. TOKENBOX_ISSUER_URL.
	EnvPrefix = "TOKENBOX"

	defaultLogLevel = "warn"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	IssuerURL string        // issuer base URL, e.g. http://127.0.0.1:8085
	Timeout   time.Duration // whole-exchange deadline
	Copy      bool          // copy tokens to the clipboard
	Lifetime  time.Duration // exp is now + Lifetime
	Claims    domain.TokenPayload
	Comment   string
	LogLevel  string

	HTTP *http.Client // optional; defaults to http.DefaultClient
	Out  io.Writer    // display and clipboard output
}

// SetDefaults registers the defaults for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIssuerURL, DefaultIssuerURL)
	v.SetDefault(KeyTimeout, exchange.DefaultTimeout)
	v.SetDefault(KeyCopy, false)
	v.SetDefault(KeyLifetime, tokenbox.DefaultLifetime)
	v.SetDefault(KeyIssuer, tokenbox.DefaultIssuer)
	v.SetDefault(KeyJWTID, tokenbox.DefaultJWTID)
	v.SetDefault(KeyInput, tokenbox.DefaultInput)
	v.SetDefault(KeyOutput, tokenbox.DefaultOutput)
	v.SetDefault(KeySubscriptions, tokenbox.DefaultSubscriptions)
	v.SetDefault(KeyConnections, tokenbox.DefaultConnections)
	v.SetDefault(KeyURL, tokenbox.DefaultURL)
	v.SetDefault(KeyComment, tokenbox.DefaultComment)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
}

// LoadConfig reads Config from v. The expiry is computed from now.
func LoadConfig(v *viper.Viper, now time.Time) Config {
	lifetime := v.GetDuration(KeyLifetime)
	return Config{
		IssuerURL: v.GetString(KeyIssuerURL),
		Timeout:   v.GetDuration(KeyTimeout),
		Copy:      v.GetBool(KeyCopy),
		Lifetime:  lifetime,
		Claims: domain.TokenPayload{
			ExpirationTime: uint32(now.Add(lifetime).Unix()),
			Issuer:         v.GetString(KeyIssuer),
			JWTID:          v.GetString(KeyJWTID),
			Input:          v.GetFloat64(KeyInput),
			Output:         v.GetFloat64(KeyOutput),
			Subscriptions:  v.GetFloat64(KeySubscriptions),
			Connections:    v.GetFloat64(KeyConnections),
			URL:            v.GetString(KeyURL),
		},
		Comment:  v.GetString(KeyComment),
		LogLevel: v.GetString(KeyLogLevel),
	}
}
