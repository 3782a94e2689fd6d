package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitWriter(t *testing.T) {
	require := require.New(t)
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetOutput(os.Stderr)

	buf := new(bytes.Buffer)
	require.NoError(InitWriter(buf, "debug"))
	require.Equal(logrus.DebugLevel, logrus.GetLevel())

	logrus.WithFields(logrus.Fields{
		"b":     2,
		"a":     "one",
		"error": errors.New("boom"),
	}).Info("test: Hello")

	out := buf.String()
	require.Contains(out, "[INFO] test: Hello\n")
	require.Contains(out, "  a = one\n  b = 2\n  error = boom\n")

	require.Error(InitWriter(buf, "loud"))
}
