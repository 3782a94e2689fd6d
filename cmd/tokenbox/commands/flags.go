package commands

import (
	"github.com/spf13/pflag"
)

// bind ties a flag to a viper key. Only flags that were set on the command
// line override the environment and config file.
func (c *cli) bind(key string, flag *pflag.Flag) {
	if err := c.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
