package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tokenbox/internal/app"
	"tokenbox/internal/protocol/tokenbox"
)

func (c *cli) getTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-token",
		Short: "Request a token and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.wire.Exchange.GetToken(cmd.Context(), c.cfg.Claims, c.cfg.Comment)
			c.wire.Display.Done()
			if err != nil {
				return err
			}
			if c.cfg.Copy {
				fmt.Fprintln(cmd.OutOrStdout(), "Token copied to clipboard.")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("url", tokenbox.DefaultURL, "url claim")
	flags.Float64("in", tokenbox.DefaultInput, "input bytes per second")
	flags.Float64("out", tokenbox.DefaultOutput, "output bytes per second")
	flags.Float64("su", tokenbox.DefaultSubscriptions, "subscriptions")
	flags.Float64("co", tokenbox.DefaultConnections, "connections")
	flags.Duration("lifetime", tokenbox.DefaultLifetime, "token lifetime")
	flags.String("comment", tokenbox.DefaultComment, "comment sent with the request")
	flags.Duration("timeout", 0, "give up after this long (default 25s)")
	flags.Bool("copy", false, "copy the token to the clipboard")

	c.bind(app.KeyURL, flags.Lookup("url"))
	c.bind(app.KeyInput, flags.Lookup("in"))
	c.bind(app.KeyOutput, flags.Lookup("out"))
	c.bind(app.KeySubscriptions, flags.Lookup("su"))
	c.bind(app.KeyConnections, flags.Lookup("co"))
	c.bind(app.KeyLifetime, flags.Lookup("lifetime"))
	c.bind(app.KeyComment, flags.Lookup("comment"))
	c.bind(app.KeyTimeout, flags.Lookup("timeout"))
	c.bind(app.KeyCopy, flags.Lookup("copy"))
	return cmd
}
