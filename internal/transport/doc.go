// Package transport provides the HTTP implementation of the
// domain.TokenTransport interface.
//
// The issuer accepts a JSON TokenRequest at POST /api1/getToken and answers
// with a JSON TokenReply carrying the boxed token. This package only moves
// those documents; opening the box is internal/protocol/tokenbox's job.
//
// Failures are classified for the caller:
//   - non-2xx status, network error, or context deadline:
//     *errortypes.TransportError (Timeout set for deadlines)
//   - undecodable body or missing reply fields: *errortypes.MalformedError
//
// No request is retried.
package transport
