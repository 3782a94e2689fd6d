package tokenbox

import (
	dropbox "github.com/dropbox/godropbox/errors"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
)

// DecodeNonce turns the textual nonce of a reply into a box nonce.
func DecodeNonce(text string) (*[crypto.NonceBytes]byte, error) {
	raw := crypto.TextToBytes(text)
	if len(raw) == 0 {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.New("tokenbox: Empty nonce"),
		}
	}
	if len(raw) > crypto.NonceBytes {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.Newf("tokenbox: Nonce is %d bytes, at most %d allowed", len(raw), crypto.NonceBytes),
		}
	}
	var nonce [crypto.NonceBytes]byte
	copy(nonce[:], raw)
	return &nonce, nil
}

// OpenResponse authenticates and decrypts reply with the exchange secret.
// Field problems are *errortypes.MalformedError and a failed box is
// *errortypes.DecryptionError.
func OpenResponse(reply domain.TokenReply, secret domain.BoxPrivate) ([]byte, error) {
	if reply.Nonce == "" || reply.Payload == "" || reply.PublicKey == "" {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.New("tokenbox: Reply is missing nonce, payload or pkey"),
		}
	}
	nonce, err := DecodeNonce(reply.Nonce)
	if err != nil {
		return nil, err
	}
	sealed, err := crypto.HexDecode(reply.Payload)
	if err != nil {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.Wrap(err, "tokenbox: Failed to decode payload"),
		}
	}
	if len(sealed) < crypto.BoxOverhead {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.Newf("tokenbox: Payload is %d bytes, shorter than box overhead", len(sealed)),
		}
	}
	rawKey, err := crypto.HexDecode(reply.PublicKey)
	if err != nil {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.Wrap(err, "tokenbox: Failed to decode pkey"),
		}
	}
	issuerKey, err := domain.BoxPublicFromBytes(rawKey)
	if err != nil {
		return nil, &errortypes.MalformedError{
			DropboxError: dropbox.Wrap(err, "tokenbox: Bad pkey"),
		}
	}

	plain, ok := crypto.Open(sealed, nonce, issuerKey, secret)
	if !ok {
		return nil, &errortypes.DecryptionError{
			DropboxError: dropbox.New("tokenbox: Box authentication failed"),
		}
	}
	return plain, nil
}

// OpenToken is OpenResponse followed by UTF-8 decoding of the token text.
func OpenToken(reply domain.TokenReply, secret domain.BoxPrivate) (string, error) {
	plain, err := OpenResponse(reply, secret)
	if err != nil {
		return "", err
	}
	token, err := crypto.BytesToText(plain)
	if err != nil {
		return "", &errortypes.MalformedError{
			DropboxError: dropbox.Wrap(err, "tokenbox: Token is not text"),
		}
	}
	return token, nil
}
