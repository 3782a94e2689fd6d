package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const timeFormat = "2006-01-02 15:04:05"

type formatter struct{}

// Format renders an entry as
//
//	[2006-01-02 15:04:05][INFO] pkg: Message
//	  key = value
func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "[%s][%s] %s\n",
		entry.Time.Format(timeFormat),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		val := entry.Data[k]
		if err, ok := val.(error); ok {
			val = err.Error()
		}
		fmt.Fprintf(buf, "  %s = %v\n", k, val)
	}

	return buf.Bytes(), nil
}
