// Package identity creates signing identities.
//
// An identity is an Ed25519 key pair plus a comment, handed to the user as a
// credentials block they can paste into a device configuration. It is a
// different key type from the X25519 pair used by token exchanges.
package identity
