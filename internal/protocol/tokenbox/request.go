package tokenbox

import (
	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
)

// NewRequest generates the ephemeral key pair for one exchange and the
// request carrying its public half. The secret stays with the caller and
// is needed exactly once, by OpenResponse.
func NewRequest(claims domain.TokenPayload, comment string) (domain.BoxKeyPair, domain.TokenRequest, error) {
	kp, err := crypto.GenerateBoxKeyPair()
	if err != nil {
		return domain.BoxKeyPair{}, domain.TokenRequest{}, err
	}
	payload := claims
	req := domain.TokenRequest{
		PublicKey: crypto.HexEncode(kp.Public.Slice()),
		Payload:   &payload,
		Comment:   comment,
	}
	return kp, req, nil
}
