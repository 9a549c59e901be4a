package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cpSecretKey  string
	cpNoPassword bool
)

// change-password: re-encrypt the secret key, or remove its password with -W.
func changePasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change or remove the password of a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := orDefault(cpSecretKey, wire.Config.SecretKey)
			if err := wire.Keys.ChangePassword(path, newPasswordPrompt, cpNoPassword); err != nil {
				return err
			}
			if cpNoPassword {
				fmt.Fprintln(cmd.OutOrStdout(), "Password removed.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cpSecretKey, "secret-key", "s", "", "secret key file")
	cmd.Flags().BoolVarP(&cpNoPassword, "no-password", "W", false, "remove the password")
	return cmd
}
