// Package logic wires configuration, logging and the cipher into the menu and batch runs.
package logic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/filter"
	"github.com/idelchi/govig/internal/logging"
	"github.com/idelchi/govig/internal/menu"
	"github.com/idelchi/govig/internal/processor"
	"github.com/idelchi/govig/internal/vigenere"
)

// ErrNothingToDo is returned when neither text nor files were given.
var ErrNothingToDo = errors.New("nothing to do: provide --text or at least one file")

// RunMenu runs the interactive menu on in and out.
// A user interruption ends the menu without error.
func RunMenu(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // nothing to recover on close

	err = menu.New(cfg, newCipher(logger), logger, in, out).Run(ctx)
	if errors.Is(err, menu.ErrInterrupted) {
		logger.Warn("execution interrupted by the user")
		fmt.Fprintln(out, "\nExecution interrupted by the user.")

		return nil
	}

	return err
}

// Run transforms cfg.Text, or every file resolved from cfg.Files.
func Run(ctx context.Context, cfg *config.Config, out, errOut io.Writer) error {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // nothing to recover on close

	cipher := newCipher(logger)

	// An explicit empty --text still selects text mode.
	if cfg.HasText || cfg.Text != "" {
		return runText(cfg, cipher, out)
	}

	if len(cfg.Files) == 0 {
		return ErrNothingToDo
	}

	start := time.Now()

	includes, err := filter.Patterns(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return fmt.Errorf("loading include patterns: %w", err)
	}

	excludes, err := filter.Patterns(cfg.Exclude, cfg.ExcludeFrom)
	if err != nil {
		return fmt.Errorf("loading exclude patterns: %w", err)
	}

	files, scanned, err := filter.Resolve(cfg.Files, includes, excludes)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	cfg.Files = files

	proc, err := processor.New(cfg, cipher, logger, out, errOut)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	if cfg.Dry {
		dryRun(cfg, proc, out)

		if cfg.Stats {
			printStats(errOut, scanned, len(files), 0, 0, time.Since(start))
		}

		return nil
	}

	processed, errored, totalSize, err := proc.ProcessFiles(ctx)

	if cfg.Stats {
		printStats(errOut, scanned, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

func newCipher(logger *slog.Logger) *vigenere.Cipher {
	return vigenere.New(vigenere.WithObserver(logging.Observer{Logger: logger}))
}

func runText(cfg *config.Config, cipher *vigenere.Cipher, out io.Writer) error {
	key, err := cfg.ResolveKey()
	if err != nil {
		return err
	}

	var result string

	if cfg.Decrypt {
		result, err = cipher.Decrypt(cfg.Text, key)
	} else {
		result, err = cipher.Encrypt(cfg.Text, key)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)

	return nil
}

// dryRun previews what would be written without transforming anything.
func dryRun(cfg *config.Config, proc *processor.Processor, out io.Writer) {
	if cfg.Quiet {
		return
	}

	for _, file := range cfg.Files {
		fmt.Fprintf(out, "Would process %q -> %q\n", file, proc.OutputPath(file))
	}
}

func printStats(w io.Writer, scanned, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
