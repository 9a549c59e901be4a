package commands

import (
	"os"

	"github.com/spf13/cobra"

	"minisign/internal/app"
)

var (
	configPath string
	verbose    bool
	wire       *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "minisign",
		Short:        "Sign files and verify signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home, err := app.DefaultHome()
			if err != nil {
				return err
			}
			path := configPath
			if path == "" {
				path = app.ConfigPath(home)
			}
			cfg, err := app.LoadConfig(path, home)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			wire, err = app.NewWire(cfg, os.Stderr)
			if err != nil {
				return err
			}
			wire.Log.Debug("config loaded", "path", path)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $MINISIGN_CONFIG or ~/.minisign/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		generateCmd(),
		recreateCmd(),
		changePasswordCmd(),
		signCmd(),
		verifyCmd(),
		versionCmd(),
	)
	return root
}

// orDefault returns flag unless it is empty.
func orDefault(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
