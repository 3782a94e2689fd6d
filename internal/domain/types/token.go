package types

// TokenPayload holds the claims of a token request. The same structure is
// signed into the issued JWT.
type TokenPayload struct {
	ExpirationTime uint32  `json:"exp"` // unix seconds
	Issuer         string  `json:"iss"`
	JWTID          string  `json:"jti"`
	Input          float64 `json:"in"`  // bytes per sec
	Output         float64 `json:"out"` // bytes per sec
	Subscriptions  float64 `json:"su"`
	Connections    float64 `json:"co"`
	URL            string  `json:"url"`
}

// TokenRequest is posted to the issuer as JSON.
type TokenRequest struct {
	PublicKey string        `json:"pkey"` // hex of our box public key
	Payload   *TokenPayload `json:"payload"`
	Comment   string        `json:"comment"`
}

// TokenReply is the boxed answer from the issuer.
type TokenReply struct {
	Nonce     string `json:"nonce"`
	Payload   string `json:"payload"` // hex ciphertext
	PublicKey string `json:"pkey"`    // hex of the issuer's box public key
}
