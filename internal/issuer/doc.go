// Package issuer is the server half of the token exchange.
//
// It accepts a TokenRequest, signs the requested claims into an Ed25519 JWT
// and returns the token boxed for the requester's ephemeral key. The JWT id
// doubles as the box nonce and is never handed out twice.
//
// HTTP API
//
//	POST /api1/getToken
//	    Body is a TokenRequest; the reply is a TokenReply.
//
//	GET /api1/getPublicKey
//	    Issuer name and hex public keys, for verifying tokens offline.
//
//	GET /metrics
//	    Prometheus counters.
package issuer
