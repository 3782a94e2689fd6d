// Package exchange runs a complete token exchange for the CLI.
//
// Each GetToken call owns its own ephemeral key pair and countdown; nothing
// is shared between calls. The call builds the request, submits it with a
// deadline, opens the boxed reply and hands the token to the display and,
// optionally, the clipboard. The secret key is wiped before GetToken returns.
//
// A reply that fails authentication never reaches the display: the status
// line is left on its waiting text.
package exchange
