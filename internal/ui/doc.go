// Package ui holds the terminal collaborators of the token exchange: a
// single-line status display and an OSC52 clipboard.
package ui
