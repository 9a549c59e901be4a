package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minisign/internal/domain"
)

var (
	recPublicKey string
	recSecretKey string
)

// recreate: rebuild the public key file from the secret key.
func recreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recreate",
		Short: "Recreate a public key file from a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := domain.KeyPaths{
				PublicKey: orDefault(recPublicKey, wire.Config.PublicKey),
				SecretKey: orDefault(recSecretKey, wire.Config.SecretKey),
			}
			if _, err := wire.Keys.Recreate(paths, promptPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The public key was saved as %s\n", paths.PublicKey)
			return nil
		},
	}
	cmd.Flags().StringVarP(&recPublicKey, "public-key", "p", "", "public key file to write")
	cmd.Flags().StringVarP(&recSecretKey, "secret-key", "s", "", "secret key file")
	return cmd
}
