// Package app wires application dependencies for the CLI.
//
// Config is read from viper (flags, TOKENBOX_* environment variables and an
// optional config file). NewWire turns it into the transport, terminal
// collaborators and services that commands use.
package app
