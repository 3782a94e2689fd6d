// Package errortypes defines the failure kinds of a token exchange.
//
// Every kind embeds a godropbox DropboxError so the original cause and stack
// are kept; callers classify with the Is* helpers.
package errortypes

import (
	"errors"
	"strings"

	dropbox "github.com/dropbox/godropbox/errors"
)

// TransportError covers non-2xx replies, network errors and timeouts.
type TransportError struct {
	dropbox.DropboxError
	Timeout bool
}

// MalformedError is an issuer reply that cannot be parsed or is missing
// required fields.
type MalformedError struct {
	dropbox.DropboxError
}

// DecryptionError is a reply whose box failed authentication.
type DecryptionError struct {
	dropbox.DropboxError
}

// RequestError is a token request the issuer refuses to serve.
type RequestError struct {
	dropbox.DropboxError
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsTimeout reports whether err is a TransportError caused by a timeout.
func IsTimeout(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.Timeout
}

// IsMalformed reports whether err is a MalformedError.
func IsMalformed(err error) bool {
	var e *MalformedError
	return errors.As(err, &e)
}

// IsDecryption reports whether err is a DecryptionError.
func IsDecryption(err error) bool {
	var e *DecryptionError
	return errors.As(err, &e)
}

// IsRequest reports whether err is a RequestError.
func IsRequest(err error) bool {
	var e *RequestError
	return errors.As(err, &e)
}

// Kind returns a short label for err used in status lines and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsTimeout(err):
		return "timeout"
	case IsTransport(err):
		return "transport failure"
	case IsMalformed(err):
		return "malformed response"
	case IsDecryption(err):
		return "decryption failed"
	case IsRequest(err):
		return "bad request"
	default:
		return "error"
	}
}

// Message returns the messages along the chain of err without the stack
// traces that godropbox errors carry in Error().
func Message(err error) string {
	var parts []string
	for err != nil {
		var de dropbox.DropboxError
		if !errors.As(err, &de) {
			parts = append(parts, err.Error())
			break
		}
		if msg := de.GetMessage(); msg != "" {
			parts = append(parts, msg)
		}
		err = de.GetInner()
	}
	return strings.Join(parts, ": ")
}
