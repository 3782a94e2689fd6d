// Package commands defines the tokenbox CLI.
//
// Commands
//
//   - get-token    Request a token from an issuer and print it
//   - keygen       Generate a signing key pair and print its credentials
//   - fingerprint  Print the fingerprint of a signing public key
//
// # Configuration
//
// Every setting can come from a flag, a TOKENBOX_* environment variable
// (TOKENBOX_ISSUER_URL, TOKENBOX_CLAIMS_URL, ...) or the file named by
// --config, in that order of precedence. The root command builds the
// dependency graph once the configuration is known.
package commands
