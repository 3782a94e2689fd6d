package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) keygenCmd() *cobra.Command {
	var (
		comment string
		copyOut bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key pair and print its credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, fp, err := c.wire.Identity.GenerateIdentity(comment)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, creds.Text())
			fmt.Fprintf(out, "Fingerprint: %s\n", fp)
			if copyOut {
				if err := c.wire.Clipboard.Copy(creds.Text()); err != nil {
					return err
				}
				fmt.Fprintln(out, "Credentials copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "comment (default \"My new key pair <date>\")")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the credentials to the clipboard")
	return cmd
}
