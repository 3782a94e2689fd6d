package tokenbox

import (
	dropbox "github.com/dropbox/godropbox/errors"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
)

// ParseClientKey decodes the hex public key of a TokenRequest.
func ParseClientKey(req domain.TokenRequest) (domain.BoxPublic, error) {
	raw, err := crypto.HexDecode(req.PublicKey)
	if err != nil {
		return domain.BoxPublic{}, dropbox.Wrap(err, "tokenbox: Failed to decode client key")
	}
	key, err := domain.BoxPublicFromBytes(raw)
	if err != nil {
		return domain.BoxPublic{}, dropbox.Wrap(err, "tokenbox: Bad client key")
	}
	return key, nil
}

// SealResponse boxes token for client under the textual nonce and returns
// the reply as sent on the wire.
func SealResponse(
	token []byte,
	nonceText string,
	client domain.BoxPublic,
	issuer domain.BoxKeyPair,
) (domain.TokenReply, error) {
	nonce, err := DecodeNonce(nonceText)
	if err != nil {
		return domain.TokenReply{}, err
	}
	sealed := crypto.Seal(token, nonce, client, issuer.Secret)
	return domain.TokenReply{
		Nonce:     nonceText,
		Payload:   crypto.HexEncode(sealed),
		PublicKey: crypto.HexEncode(issuer.Public.Slice()),
	}, nil
}
