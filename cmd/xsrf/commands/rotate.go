package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsrftoken"
)

func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Replace the stored session token with a fresh one",
		Long: "Replace the stored session token with a fresh one. Request tokens\n" +
			"minted from the old session token stop verifying immediately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			// Require the old token to open first so a wrong passphrase
			// cannot silently replace the vault contents.
			old, err := vlt.Load(passphrase)
			if err != nil {
				return err
			}
			t, err := xsrftoken.New()
			if err != nil {
				return err
			}
			if err := vlt.Save(passphrase, t); err != nil {
				return err
			}
			fmt.Printf("Session rotated.\nOld fingerprint: %s\nNew fingerprint: %s\nToken: %s\n",
				old.Fingerprint(), t.Fingerprint(), t.Encode())
			return nil
		},
	}
}
