package commands

import (
	"github.com/spf13/cobra"

	"minisign/internal/domain"
)

var (
	signMessage   string
	signSignature string
	signSecretKey string
	signUntrusted string
	signTrusted   string
)

// sign -m <file>: sign a file and write <file>.minisig.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign -m <file>",
		Short: "Sign a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.Signing.Sign(domain.SignRequest{
				SecretKeyPath:    orDefault(signSecretKey, wire.Config.SecretKey),
				MessagePath:      signMessage,
				SignaturePath:    signSignature,
				TrustedComment:   signTrusted,
				UntrustedComment: signUntrusted,
			}, promptPassword)
			return err
		},
	}
	cmd.Flags().StringVarP(&signMessage, "message", "m", "", "file to sign")
	cmd.Flags().StringVarP(&signSignature, "signature", "x", "", "signature file (default <file>.minisig)")
	cmd.Flags().StringVarP(&signSecretKey, "secret-key", "s", "", "secret key file")
	cmd.Flags().StringVarP(&signUntrusted, "comment", "c", "", "untrusted comment")
	cmd.Flags().StringVarP(&signTrusted, "trusted-comment", "t", "", "trusted comment")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
