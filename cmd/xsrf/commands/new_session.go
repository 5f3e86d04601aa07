package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsrftoken"
)

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-session",
		Short: "Create a session token and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if vlt.Exists() {
				return fmt.Errorf("session token already exists; use rotate to replace it")
			}
			t, err := xsrftoken.New()
			if err != nil {
				return err
			}
			if err := vlt.Save(passphrase, t); err != nil {
				return err
			}
			fmt.Printf("Session created.\nFingerprint: %s\nToken: %s\n", t.Fingerprint(), t.Encode())
			return nil
		},
	}
}
