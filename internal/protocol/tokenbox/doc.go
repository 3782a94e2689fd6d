// Package tokenbox implements the token request / boxed reply exchange.
//
// # Overview
//
// A client asks an issuer for an access token without an account. It sends
// its claims together with an ephemeral X25519 public key; the issuer signs
// the token and returns it sealed with nacl/box for that key, so only the
// requester can read it.
//
// # Flows
//
// Client:
//  1. NewRequest generates a fresh box key pair and builds the TokenRequest,
//     with the public key in lowercase hex.
//  2. The request is POSTed as JSON (see internal/transport).
//  3. OpenResponse decodes nonce, ciphertext and issuer key, and opens the box
//     with the ephemeral secret key.
//
// Issuer:
//  1. ParseClientKey checks the hex public key from the request.
//  2. SealResponse boxes the token with a fresh nonce and hex-encodes it.
//
// # Nonces
//
// The nonce travels as text. Its UTF-8 bytes are copied into the 24-byte box
// nonce; shorter text is zero padded, longer text is rejected.
//
// # Errors
//
// Reply problems are *errortypes.MalformedError; a box that fails
// authentication is *errortypes.DecryptionError and never yields plaintext.
package tokenbox
