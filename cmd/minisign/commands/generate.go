package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"minisign/internal/crypto"
	"minisign/internal/domain"
	"minisign/internal/store"
)

var (
	genPublicKey  string
	genSecretKey  string
	genNoPassword bool
	genForce      bool
)

// generate: create a new key pair.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := domain.KeyPaths{
				PublicKey: orDefault(genPublicKey, wire.Config.PublicKey),
				SecretKey: orDefault(genSecretKey, wire.Config.SecretKey),
			}
			out := cmd.OutOrStdout()

			var password []byte
			if !genNoPassword {
				fmt.Fprintln(cmd.ErrOrStderr(), "Please enter a password to protect the secret key.")
				pw, err := confirmedPassword("Password: ")
				if err != nil {
					return err
				}
				defer crypto.Wipe(pw)
				password = pw
			}

			pk, err := wire.Keys.Generate(domain.GenerateRequest{
				Paths:    paths,
				Password: password,
				Force:    genForce,
			})
			if errors.Is(err, store.ErrExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "The secret key was saved as %s - Keep it secret!\n", paths.SecretKey)
			fmt.Fprintf(out, "The public key was saved as %s - That one can be public.\n\n", paths.PublicKey)
			fmt.Fprintln(out, "Files signed using this key pair can be verified with the following command:")
			fmt.Fprintf(out, "\nminisign verify -m <file> -P %s\n", pk.Encoded())
			return nil
		},
	}
	cmd.Flags().StringVarP(&genPublicKey, "public-key", "p", "", "public key file (default from config, ./minisign.pub)")
	cmd.Flags().StringVarP(&genSecretKey, "secret-key", "s", "", "secret key file (default from config, ~/.minisign/minisign.key)")
	cmd.Flags().BoolVarP(&genNoPassword, "no-password", "W", false, "do not encrypt the secret key with a password")
	cmd.Flags().BoolVarP(&genForce, "force", "f", false, "overwrite existing key files")
	return cmd
}
