package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint",
		Short: "Derive a request token from the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := vlt.Load(passphrase)
			if err != nil {
				return err
			}
			r, err := t.Mint()
			if err != nil {
				return err
			}
			fmt.Println(r.Encode())
			return nil
		},
	}
}
