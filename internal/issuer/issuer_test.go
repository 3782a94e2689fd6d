package issuer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/protocol/tokenbox"
	"tokenbox/internal/services/exchange"
	"tokenbox/internal/transport"
	"tokenbox/internal/ui"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestIssuer(t *testing.T) (*Issuer, *prometheus.Registry) {
	t.Helper()
	cfg, err := Generate()
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	iss, err := New(cfg, reg)
	require.NoError(t, err)
	return iss, reg
}

func TestIssue(t *testing.T) {
	require := require.New(t)
	iss, _ := newTestIssuer(t)

	now := time.Unix(1700000000, 0)
	iss.now = func() time.Time { return now }

	claims := tokenbox.DefaultClaims(now)
	claims.ExpirationTime = uint32(now.Add(10 * 365 * 24 * time.Hour).Unix())
	keys, req, err := tokenbox.NewRequest(claims, "test")
	require.NoError(err)

	reply, err := iss.Issue(req, "127.0.0.1")
	require.NoError(err)
	require.Len(reply.Nonce, 24)
	require.Equal(crypto.HexEncode(iss.BoxPublic().Slice()), reply.PublicKey)

	token, err := tokenbox.OpenResponse(reply, keys.Secret)
	require.NoError(err)

	got, ok := Verify(token, iss.SigningPublic())
	require.True(ok)
	require.Equal(defaultIssuerName, got.Issuer)
	require.Equal(reply.Nonce, got.JWTID)
	require.Equal(uint32(now.Add(365*24*time.Hour).Unix()), got.ExpirationTime)
	require.Equal("knotfree.net", got.URL)
	require.Equal(32.0, got.Input)
	require.Equal(2.0, got.Connections)

	other, err := crypto.GenerateSigningKeyPair()
	require.NoError(err)
	_, ok = Verify(token, other.Public)
	require.False(ok)
}

func TestIssueNoncesAreUnique(t *testing.T) {
	require := require.New(t)
	iss, _ := newTestIssuer(t)

	_, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		reply, err := iss.Issue(req, "")
		require.NoError(err)
		require.False(seen[reply.Nonce])
		seen[reply.Nonce] = true
	}
}

func TestIssueRejectsBadRequests(t *testing.T) {
	require := require.New(t)
	iss, reg := newTestIssuer(t)

	_, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(err)

	bad := req
	bad.PublicKey = "abcd"
	_, err = iss.Issue(bad, "")
	require.True(errortypes.IsRequest(err))

	bad = req
	bad.Payload = nil
	_, err = iss.Issue(bad, "")
	require.True(errortypes.IsRequest(err))

	require.Equal(2.0, testutil.ToFloat64(iss.metrics.bad))
	require.Equal(0.0, testutil.ToFloat64(iss.metrics.issued))

	n, err := testutil.GatherAndCount(reg, "bad_token_requests_total")
	require.NoError(err)
	require.Equal(1, n)
}

func TestHandler(t *testing.T) {
	require := require.New(t)
	iss, reg := newTestIssuer(t)
	srv := httptest.NewServer(NewHandler(iss, 0, reg).Engine())
	defer srv.Close()

	resp, err := http.Post(srv.URL+transport.TokenPath, "application/json", bytes.NewBufferString("{not json"))
	require.NoError(err)
	resp.Body.Close()
	require.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+transport.TokenPath, "application/json",
		bytes.NewBufferString(`{"pkey":"00","payload":{"url":"x"}}`))
	require.NoError(err)
	resp.Body.Close()
	require.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api1/getPublicKey")
	require.NoError(err)
	keys := PublicKeys{}
	require.NoError(json.NewDecoder(resp.Body).Decode(&keys))
	resp.Body.Close()
	require.Equal(defaultIssuerName, keys.Name)
	require.Equal(crypto.HexEncode(iss.BoxPublic().Slice()), keys.Box)
	require.Equal(crypto.HexEncode(iss.SigningPublic().Slice()), keys.Signing)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(err)
	resp.Body.Close()
	require.Equal(http.StatusOK, resp.StatusCode)
}

func TestEndToEnd(t *testing.T) {
	require := require.New(t)
	iss, reg := newTestIssuer(t)
	srv := httptest.NewServer(NewHandler(iss, 10*time.Millisecond, reg).Engine())
	defer srv.Close()

	out := new(bytes.Buffer)
	display := ui.NewTerminal(out)
	svc := exchange.New(transport.NewHTTP(srv.URL, nil), display, nil, exchange.Config{
		Timeout: 5 * time.Second,
		Tick:    time.Hour,
	})

	claims := domain.TokenPayload{URL: "knotfree.net", Input: 32, Output: 32, Subscriptions: 4, Connections: 2}
	token, err := svc.GetToken(context.Background(), claims, "e2e")
	require.NoError(err)
	require.Equal(token, display.Last())

	got, ok := Verify([]byte(token), iss.SigningPublic())
	require.True(ok)
	require.Equal("knotfree.net", got.URL)
	require.Equal(4.0, got.Subscriptions)
	require.NotZero(got.ExpirationTime, "zero exp is clamped")
	require.Equal(1.0, testutil.ToFloat64(iss.metrics.issued))
}
