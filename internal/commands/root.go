// Package commands provides the command-line interface for the govig tool.
//
// It implements:
//   - the interactive menu (root command)
//   - encryption of text or files
//   - decryption of text or files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
// Flags are bound to the global viper instance, with environment variables
// prefixed by the root command name (GOVIG_LOG_LEVEL, GOVIG_KEY, ...).
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// Without a subcommand it runs the interactive menu.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, readConfigFile)

	root.Use = "govig [flags] [command]"
	root.Short = "Vigenère cipher utility"
	root.Long = `Encrypts and decrypts text with the Vigenère cipher.
Without a command an interactive menu is shown; the encrypt and decrypt
commands transform a single text or many files at once.`
	root.Args = cobra.ArbitraryArgs

	root.PreRunE = func(_ *cobra.Command, _ []string) error {
		return cobraext.Validate(cfg, cfg)
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cobraext.UnknownSubcommandAction(cmd, args)
		}

		return logic.RunMenu(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().StringP("config", "c", "", "Path to a configuration file (yaml, toml, json, hcl)")
	root.PersistentFlags().String("data-dir", "data", "Directory the menu reads files from")
	root.PersistentFlags().String("results-dir", "data/1_Resultados", "Directory transformed files are written to")
	root.PersistentFlags().String("encrypt-suffix", "_cifrado", "Suffix appended to the stem of encrypted files")
	root.PersistentFlags().String("decrypt-suffix", "_descifrado", "Suffix appended to the stem of decrypted files")
	root.PersistentFlags().String("log-file", "logs.log", "Log file, empty to disable logging")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "Log format: text or json")

	root.Flags().BoolP("loop", "l", false, "Show the menu again after each option until interrupted")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}

// readConfigFile loads the optional --config file into viper.
// Flags and environment variables still take precedence over its values.
func readConfigFile(_ *cobra.Command, _ []string) error {
	viper.SetDefault("parallel", runtime.NumCPU())

	file := viper.GetString("config")
	if file == "" {
		return nil
	}

	viper.SetConfigFile(file)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}
