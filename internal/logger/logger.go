// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"

	dropbox "github.com/dropbox/godropbox/errors"
	"github.com/sirupsen/logrus"
)

// Init installs the formatter and sets the level by name ("debug", "info",
// "warn", ...). An empty level means info.
func Init(level string) error {
	return InitWriter(os.Stderr, level)
}

// InitWriter is Init with an explicit output.
func InitWriter(out io.Writer, level string) error {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return dropbox.Wrap(err, "logger: Bad log level")
		}
	}

	logrus.SetFormatter(&formatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	return nil
}
