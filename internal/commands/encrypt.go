package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [files/directories...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text or files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	transformFlags(cmd)

	return cmd
}

// preRun returns a PreRunE handler that validates the configuration
// and records the positional args and the transform direction.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if err := cobraext.Validate(cfg, cfg); err != nil {
			return err //nolint:wrapcheck // already wrapped with usage hint
		}

		cfg.Files = args
		cfg.Decrypt = decrypt
		cfg.HasText = viper.IsSet("text")

		return nil
	}
}

// transformFlags adds the flags shared by encrypt and decrypt.
func transformFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Vigenère key; only its letters are used")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file holding the key")
	cmd.Flags().StringP("text", "t", "", "Transform this text and print it instead of processing files")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().Bool("stats", false, "Print processing statistics")
	cmd.Flags().Bool("dry", false, "Show what would be written without writing")
	cmd.Flags().StringSlice("include", []string{"*.txt"}, "Base-name globs selecting files inside directories")
	cmd.Flags().String("include-from", "", "JSONC file with additional include globs")
	cmd.Flags().StringSlice("exclude", nil, "Base-name globs removing files found inside directories")
	cmd.Flags().String("exclude-from", "", "JSONC file with additional exclude globs")
}
