// Package main runs tokensrv, a development token issuer.
//
// It mints Ed25519 JWTs for the claims a client asks for and returns each
// one sealed to the client's ephemeral box key. See package issuer for the
// HTTP API.
//
// Usage
//
//	tokensrv -g > tokensrv.toml   # write a config with fresh keys
//	tokensrv -f tokensrv.toml     # serve
//
// Behaviour
//
//   - Keys come from the config file only; nothing is written to disk.
//   - Every reply is held back by Server.ReplyDelayMillis.
//   - SIGINT and SIGTERM shut the server down gracefully.
package main
