package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsrftoken"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <request-token>",
		Short: "Check an encoded request token against the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := vlt.Load(passphrase)
			if err != nil {
				return err
			}
			r, err := xsrftoken.DecodeRequestToken(args[0])
			if err != nil {
				return err
			}
			if err := t.Verify(r); err != nil {
				return err
			}
			fmt.Println("token OK")
			return nil
		},
	}
}
