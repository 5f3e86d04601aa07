package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the stored session token's fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := vlt.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", t.Fingerprint())
			return nil
		},
	}
}
