package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"xsrftoken/internal/vault"
)

var (
	home       string
	passphrase string
	vlt        *vault.Vault
)

func Execute() error {
	root := &cobra.Command{
		Use:   "xsrf",
		Short: "Double-submit XSRF token toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".xsrf")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			vlt = vault.New(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.xsrf)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session token")

	root.AddCommand(newSessionCmd(), mintCmd(), verifyCmd(), fingerprintCmd(), rotateCmd())
	return root.Execute()
}
