package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"minisign/internal/domain"
)

var (
	verMessage    string
	verSignature  string
	verPublicKey  string
	verKey        string
	verOutput     bool
	verQuiet      bool
	verQuietPrint bool
)

// verify -m <file>: check <file> against its signature.
func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify -m <file>",
		Short: "Verify a signed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.VerifyRequest{
				PublicKey:     verKey,
				MessagePath:   verMessage,
				SignaturePath: verSignature,
			}
			if verKey == "" {
				req.PublicKeyPath = orDefault(verPublicKey, wire.Config.PublicKey)
			}

			res, err := wire.Signing.Verify(req)
			if err != nil {
				return err
			}

			// With -o the file goes to stdout, so the report moves to stderr.
			report := cmd.OutOrStdout()
			if verOutput {
				report = cmd.ErrOrStderr()
			}
			switch {
			case verQuiet:
			case verQuietPrint:
				fmt.Fprintln(report, res.Verification.TrustedComment)
			default:
				fmt.Fprintln(report, res.Verification.String())
			}

			if verOutput {
				return copyFile(cmd.OutOrStdout(), verMessage)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&verMessage, "message", "m", "", "file to verify")
	cmd.Flags().StringVarP(&verSignature, "signature", "x", "", "signature file (default <file>.minisig)")
	cmd.Flags().StringVarP(&verPublicKey, "public-key", "p", "", "public key file")
	cmd.Flags().StringVarP(&verKey, "key", "P", "", "public key as a base64 string")
	cmd.Flags().BoolVarP(&verOutput, "output", "o", false, "output the file content after verification")
	cmd.Flags().BoolVarP(&verQuiet, "quiet", "q", false, "print nothing on success")
	cmd.Flags().BoolVarP(&verQuietPrint, "quiet-comment", "Q", false, "print only the trusted comment")
	cmd.MarkFlagsMutuallyExclusive("public-key", "key")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
