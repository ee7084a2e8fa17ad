// Package processor transforms many text files concurrently with a Vigenère key.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/fileutil"
	"github.com/idelchi/govig/internal/vigenere"
)

// ErrOutputCollision is returned when two inputs would be written to the same output file.
var ErrOutputCollision = errors.New("output path collision")

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher performs the transform
	cipher *vigenere.Cipher

	// key is the resolved key text
	key string

	// logger records per-file outcomes
	logger *slog.Logger

	// out and errOut receive progress and error lines
	out, errOut io.Writer
}

// New creates a Processor. The key and the output paths are checked up front
// so that an invalid key or two inputs sharing an output fail before any file is touched.
func New(cfg *config.Config, cipher *vigenere.Cipher, logger *slog.Logger, out, errOut io.Writer) (*Processor, error) {
	key, err := cfg.ResolveKey()
	if err != nil {
		return nil, err
	}

	if _, err := vigenere.AdjustKey("", key); err != nil {
		return nil, err
	}

	proc := &Processor{
		cfg:    cfg,
		cipher: cipher,
		key:    key,
		logger: logger,
		out:    out,
		errOut: errOut,
	}

	if err := proc.checkOutputs(); err != nil {
		return nil, err
	}

	return proc, nil
}

// checkOutputs rejects inputs whose outputs would overwrite each other.
func (p *Processor) checkOutputs() error {
	owners := make(map[string]string, len(p.cfg.Files))

	for _, file := range p.cfg.Files {
		outPath := p.OutputPath(file)

		if owner, ok := owners[outPath]; ok {
			return fmt.Errorf("%w: %q and %q both write %q", ErrOutputCollision, owner, file, outPath)
		}

		owners[outPath] = file
	}

	return nil
}

// OutputPath returns where the transform of filename is written.
func (p *Processor) OutputPath(filename string) string {
	suffix := p.cfg.Suffixes.Encrypt
	if p.cfg.Decrypt {
		suffix = p.cfg.Suffixes.Decrypt
	}

	return fileutil.OutputPath(p.cfg.Dirs.Results, filename, suffix)
}

// ProcessFiles concurrently processes all files in the configuration.
// Returns the number of successfully processed files, the number of errors
// and the total size of the written files.
func (p *Processor) ProcessFiles(ctx context.Context) (processed, errored int, totalSize int64, err error) {
	results := make(chan Result, len(p.cfg.Files))

	// A failing file does not stop the others; only ctx cancellation does.
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				p.logger.Error("processing file", "input", result.Input, "error", result.Error)
				fmt.Fprintf(p.errOut, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			p.logger.Info("processed file", "input", result.Input, "output", result.Output)

			if !p.cfg.Quiet {
				fmt.Fprintf(p.out, "Processed %q -> %q\n", result.Input, result.Output)
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outPath := p.OutputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile reads filename, transforms its text and writes it to outPath.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	text, err := fileutil.ReadText(filename)
	if err != nil {
		return 0, err
	}

	var output string

	if p.cfg.Decrypt {
		output, err = p.cipher.Decrypt(text, p.key)
	} else {
		output, err = p.cipher.Encrypt(text, p.key)
	}

	if err != nil {
		return 0, err
	}

	return fileutil.WriteText(outPath, output)
}
