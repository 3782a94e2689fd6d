package interfaces

// Display receives status text for the user: waiting messages, the
// countdown, the final token or an error.
type Display interface {
	Show(status string)
}

// Clipboard makes text the active selection. Failures are reported but are
// never fatal to the caller.
type Clipboard interface {
	Copy(text string) error
}
