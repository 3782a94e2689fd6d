package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tokenbox/internal/app"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/logger"
)

// cli is the state shared by the subcommands of one invocation.
type cli struct {
	v       *viper.Viper
	out     io.Writer
	cfgFile string
	wire    *app.Wire
	cfg     app.Config
}

// Execute runs the CLI. Errors are printed to stderr without the stack
// traces they carry.
func Execute(ctx context.Context) error {
	root := newRootCmd(os.Stdout)
	root.SilenceErrors = true
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errortypes.Message(err))
	}
	return err
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}
	app.SetDefaults(c.v)
	c.v.SetEnvPrefix(app.EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "tokenbox",
		Short:        "Request encrypted access tokens and manage signing keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("issuer", app.DefaultIssuerURL, "issuer base URL")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	c.bind(app.KeyIssuerURL, flags.Lookup("issuer"))
	c.bind(app.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(c.getTokenCmd(), c.keygenCmd(), c.fingerprintCmd())
	return root
}

func (c *cli) setup() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return err
		}
	}

	c.cfg = app.LoadConfig(c.v, time.Now())
	c.cfg.Out = c.out
	if err := logger.Init(c.cfg.LogLevel); err != nil {
		return err
	}

	w, err := app.NewWire(c.cfg)
	if err != nil {
		return err
	}
	c.wire = w
	return nil
}
