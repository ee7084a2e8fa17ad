// Package config holds the runtime configuration of govig.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config holds the configuration for the menu and the encrypt/decrypt commands.
type Config struct {
	// Show prints the configuration and exits
	Show bool `mapstructure:"show"`

	// Key is the Vigenère key given on the command line
	Key string `label:"--key" mapstructure:"key" validate:"exclusive=KeyFile"`

	// KeyFile is the path to a file holding the key
	KeyFile string `label:"--key-file" mapstructure:"key-file" validate:"exclusive=Key"`

	// Text is transformed and printed instead of processing files
	Text string `mapstructure:"text"`

	// HasText marks Text as given, even when empty
	HasText bool `mapstructure:"-"`

	// Parallel bounds concurrent file processing
	Parallel int `label:"--parallel" mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool `mapstructure:"quiet"`

	// Stats prints processing statistics
	Stats bool `mapstructure:"stats"`

	// Dry lists what would be written without writing
	Dry bool `mapstructure:"dry"`

	// Decrypt selects decryption instead of encryption
	Decrypt bool `mapstructure:"-"`

	// Loop repeats the interactive menu until interrupted
	Loop bool `mapstructure:"loop"`

	// Include holds base-name globs selecting files inside directories
	Include []string `mapstructure:"include"`

	// IncludeFrom is a JSONC file with additional include globs
	IncludeFrom string `mapstructure:"include-from"`

	// Exclude holds base-name globs removing files found inside directories
	Exclude []string `mapstructure:"exclude"`

	// ExcludeFrom is a JSONC file with additional exclude globs
	ExcludeFrom string `mapstructure:"exclude-from"`

	Dirs     Dirs     `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`
	Log      Log      `mapstructure:",squash"`

	// Files holds the positional arguments
	Files []string `mapstructure:"-"`
}

// Dirs holds the directories used by the file options.
type Dirs struct {
	// Data is where the menu looks up file names
	Data string `label:"--data-dir" mapstructure:"data-dir" validate:"required"`

	// Results is where transformed files are written
	Results string `label:"--results-dir" mapstructure:"results-dir" validate:"required"`
}

// Suffixes holds the suffixes appended to the stem of transformed files.
type Suffixes struct {
	Encrypt string `label:"--encrypt-suffix" mapstructure:"encrypt-suffix" validate:"required"`
	Decrypt string `label:"--decrypt-suffix" mapstructure:"decrypt-suffix" validate:"required,nefield=Encrypt"`
}

// Log holds the logging configuration.
type Log struct {
	// File is the log destination; empty disables logging
	File string `label:"--log-file" mapstructure:"log-file"`

	Level  string `label:"--log-level"  mapstructure:"log-level"  validate:"oneof=debug info warn error"`
	Format string `label:"--log-format" mapstructure:"log-format" validate:"oneof=text json"`
}

// Display reports whether the configuration should be printed instead of run.
func (c *Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

// ResolveKey returns the key from the flag, or the trimmed contents of the key file.
func (c *Config) ResolveKey() (string, error) {
	if c.KeyFile == "" {
		return c.Key, nil
	}

	data, err := os.ReadFile(c.KeyFile)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
