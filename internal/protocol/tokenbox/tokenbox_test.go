package tokenbox_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/protocol/tokenbox"
)

const testNonce = "B0D1ORhXecbp4juOIvJp49j6" // 24 chars, like an issued jti

// sealFor plays the issuer: it boxes msg for the client key of req.
func sealFor(t *testing.T, req domain.TokenRequest, msg string) (domain.TokenReply, domain.BoxKeyPair) {
	t.Helper()
	issuer, err := crypto.GenerateBoxKeyPair()
	require.NoError(t, err)
	client, err := tokenbox.ParseClientKey(req)
	require.NoError(t, err)
	reply, err := tokenbox.SealResponse([]byte(msg), testNonce, client, issuer)
	require.NoError(t, err)
	return reply, issuer
}

func TestNewRequest_Scenario(t *testing.T) {
	claims := tokenbox.DefaultClaims(time.Unix(1700000000, 0))
	claims.URL = "knotfree.net"
	claims.Input, claims.Output = 32, 32
	claims.Subscriptions, claims.Connections = 4, 2

	kp, req, err := tokenbox.NewRequest(claims, "My token")
	require.NoError(t, err)

	wire, err := json.Marshal(req)
	require.NoError(t, err)
	s := string(wire)

	require.Contains(t, s, `"url":"knotfree.net"`)
	require.Contains(t, s, `"in":32`)
	require.Contains(t, s, `"out":32`)
	require.Contains(t, s, `"su":4`)
	require.Contains(t, s, `"co":2`)
	require.Contains(t, s, `"iss":"none"`)
	require.Contains(t, s, `"jti":"none"`)
	require.Contains(t, s, `"comment":"My token"`)

	require.Len(t, req.PublicKey, 64)
	require.Equal(t, strings.ToLower(req.PublicKey), req.PublicKey)
	require.Equal(t, crypto.HexEncode(kp.Public[:]), req.PublicKey)
}

func TestNewRequest_NeverLeaksSecret(t *testing.T) {
	for i := 0; i < 16; i++ {
		kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), tokenbox.DefaultComment)
		require.NoError(t, err)
		wire, err := json.Marshal(req)
		require.NoError(t, err)

		secretHex := crypto.HexEncode(kp.Secret[:])
		require.NotContains(t, string(wire), secretHex)
		require.NotContains(t, strings.ToUpper(string(wire)), strings.ToUpper(secretHex))

		pairJSON, err := json.Marshal(kp)
		require.NoError(t, err)
		require.Equal(t, "{}", string(pairJSON))
	}
}

func TestNewRequest_FreshKeysPerExchange(t *testing.T) {
	a, _, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	b, _, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	require.NotEqual(t, a.Secret, b.Secret)
	require.NotEqual(t, a.Public, b.Public)
}

func TestOpenToken_Scenario(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, "abc123")

	token, err := tokenbox.OpenToken(reply, kp.Secret)
	require.NoError(t, err)
	require.Equal(t, "abc123", token)
}

func TestOpenResponse_EmptyPlaintextIsNotFailure(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, "")

	plain, err := tokenbox.OpenResponse(reply, kp.Secret)
	require.NoError(t, err)
	require.NotNil(t, plain)
	require.Empty(t, plain)
}

func TestOpenResponse_NonASCIIToken(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, "jeton – ключ ✓")

	token, err := tokenbox.OpenToken(reply, kp.Secret)
	require.NoError(t, err)
	require.Equal(t, "jeton – ключ ✓", token)
}

func TestOpenResponse_ShortNonceIsPadded(t *testing.T) {
	kp, _, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	issuer, err := crypto.GenerateBoxKeyPair()
	require.NoError(t, err)

	var nonce [crypto.NonceBytes]byte
	copy(nonce[:], "short")
	sealed := crypto.Seal([]byte("tok"), &nonce, kp.Public, issuer.Secret)
	reply := domain.TokenReply{
		Nonce:     "short",
		Payload:   crypto.HexEncode(sealed),
		PublicKey: crypto.HexEncode(issuer.Public[:]),
	}
	token, err := tokenbox.OpenToken(reply, kp.Secret)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}

func flipHex(t *testing.T, s string, i int) string {
	t.Helper()
	b, err := crypto.HexDecode(s)
	require.NoError(t, err)
	b[i] ^= 0x01
	return crypto.HexEncode(b)
}

func TestOpenResponse_TamperingFailsAuthentication(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, "abc123")

	payloadLen := len(reply.Payload) / 2
	for i := 0; i < payloadLen; i++ {
		bad := reply
		bad.Payload = flipHex(t, reply.Payload, i)
		plain, err := tokenbox.OpenResponse(bad, kp.Secret)
		require.Nil(t, plain)
		require.True(t, errortypes.IsDecryption(err), "payload byte %d: %v", i, err)
	}

	for i := 0; i < 32; i++ {
		bad := reply
		bad.PublicKey = flipHex(t, reply.PublicKey, i)
		plain, err := tokenbox.OpenResponse(bad, kp.Secret)
		require.Nil(t, plain)
		require.True(t, errortypes.IsDecryption(err), "pkey byte %d: %v", i, err)
	}

	for i := 0; i < len(reply.Nonce); i++ {
		bad := reply
		n := []byte(reply.Nonce)
		n[i] ^= 0x01
		bad.Nonce = string(n)
		plain, err := tokenbox.OpenResponse(bad, kp.Secret)
		require.Nil(t, plain)
		require.True(t, errortypes.IsDecryption(err), "nonce byte %d: %v", i, err)
	}
}

func TestOpenResponse_WrongSecret(t *testing.T) {
	_, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, "abc123")

	other, err := crypto.GenerateBoxKeyPair()
	require.NoError(t, err)
	_, err = tokenbox.OpenResponse(reply, other.Secret)
	require.True(t, errortypes.IsDecryption(err))
}

func TestOpenResponse_Malformed(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	good, _ := sealFor(t, req, "abc123")

	cases := map[string]func(r *domain.TokenReply){
		"missing nonce":   func(r *domain.TokenReply) { r.Nonce = "" },
		"missing payload": func(r *domain.TokenReply) { r.Payload = "" },
		"missing pkey":    func(r *domain.TokenReply) { r.PublicKey = "" },
		"long nonce":      func(r *domain.TokenReply) { r.Nonce = strings.Repeat("n", 25) },
		"odd payload":     func(r *domain.TokenReply) { r.Payload = r.Payload[1:] },
		"non-hex payload": func(r *domain.TokenReply) { r.Payload = "zz" + r.Payload[2:] },
		"short payload":   func(r *domain.TokenReply) { r.Payload = "abcd" },
		"short pkey":      func(r *domain.TokenReply) { r.PublicKey = r.PublicKey[:62] },
		"non-hex pkey":    func(r *domain.TokenReply) { r.PublicKey = "g" + r.PublicKey[1:] },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := good
			mutate(&r)
			plain, err := tokenbox.OpenResponse(r, kp.Secret)
			require.Nil(t, plain)
			require.True(t, errortypes.IsMalformed(err), "%v", err)
			require.False(t, errortypes.IsDecryption(err))
		})
	}
}

func TestOpenToken_InvalidUTF8IsMalformed(t *testing.T) {
	kp, req, err := tokenbox.NewRequest(tokenbox.DefaultClaims(time.Now()), "")
	require.NoError(t, err)
	reply, _ := sealFor(t, req, string([]byte{0xff, 0xfe}))

	_, err = tokenbox.OpenToken(reply, kp.Secret)
	require.True(t, errortypes.IsMalformed(err))
}

func TestParseClientKey(t *testing.T) {
	_, err := tokenbox.ParseClientKey(domain.TokenRequest{PublicKey: "abcd"})
	require.Error(t, err)
	_, err = tokenbox.ParseClientKey(domain.TokenRequest{PublicKey: "xyz"})
	require.Error(t, err)
}
