package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tokenbox/internal/services/identity"
)

func (c *cli) fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [public-key | -]",
		Short: "Print the fingerprint of a signing public key",
		Long: "Print the fingerprint of a signing public key given in hex, or of the\n" +
			"credentials block read from stdin when the argument is - or absent.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 && args[0] != "-" {
				text = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}
			pub, err := identity.ParsePublicKey(strings.TrimSpace(text))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", identity.Fingerprint(pub))
			return nil
		},
	}
}
