package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	require := require.New(t)

	v := viper.New()
	SetDefaults(v)
	now := time.Unix(1700000000, 0)
	cfg := LoadConfig(v, now)

	require.Equal(DefaultIssuerURL, cfg.IssuerURL)
	require.Equal(25*time.Second, cfg.Timeout)
	require.False(cfg.Copy)
	require.Equal("My token", cfg.Comment)
	require.Equal(uint32(now.Add(365*24*time.Hour).Unix()), cfg.Claims.ExpirationTime)
	require.Equal("none", cfg.Claims.Issuer)
	require.Equal("none", cfg.Claims.JWTID)
	require.Equal(32.0, cfg.Claims.Input)
	require.Equal(32.0, cfg.Claims.Output)
	require.Equal(4.0, cfg.Claims.Subscriptions)
	require.Equal(2.0, cfg.Claims.Connections)
	require.Equal("knotfree.net", cfg.Claims.URL)
}

func TestLoadConfigOverrides(t *testing.T) {
	require := require.New(t)

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(v.ReadConfig(bytes.NewBufferString(`
issuer:
  url: https://issuer.example
exchange:
  timeout: 3s
  copy: true
claims:
  url: example.net
  su: 8
  lifetime: 1h
`)))

	now := time.Unix(1700000000, 0)
	cfg := LoadConfig(v, now)
	require.Equal("https://issuer.example", cfg.IssuerURL)
	require.Equal(3*time.Second, cfg.Timeout)
	require.True(cfg.Copy)
	require.Equal("example.net", cfg.Claims.URL)
	require.Equal(8.0, cfg.Claims.Subscriptions)
	require.Equal(uint32(now.Add(time.Hour).Unix()), cfg.Claims.ExpirationTime)
}

func TestNewWire(t *testing.T) {
	require := require.New(t)

	v := viper.New()
	SetDefaults(v)
	cfg := LoadConfig(v, time.Now())
	cfg.Out = new(bytes.Buffer)

	w, err := NewWire(cfg)
	require.NoError(err)
	require.NotNil(w.Exchange)
	require.NotNil(w.Identity)
	require.NotNil(w.Display)
	require.NotNil(w.Clipboard)
}
