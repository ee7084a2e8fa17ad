// Package menu implements the interactive console menu for encrypting and
// decrypting text typed by the user or read from a file.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/fileutil"
	"github.com/idelchi/govig/internal/vigenere"
)

// ErrInterrupted is returned when input ends or the context is cancelled while waiting for the user.
var ErrInterrupted = errors.New("execution interrupted by the user")

type source int

const (
	console source = iota
	file
)

type action struct {
	op     vigenere.Operation
	source source
}

var actions = map[string]action{
	"1": {op: vigenere.OpEncrypt, source: console},
	"2": {op: vigenere.OpDecrypt, source: console},
	"3": {op: vigenere.OpEncrypt, source: file},
	"4": {op: vigenere.OpDecrypt, source: file},
}

// Menu reads choices from an input and writes prompts and results to an output.
type Menu struct {
	cfg    *config.Config
	cipher *vigenere.Cipher
	logger *slog.Logger
	out    io.Writer
	lines  <-chan string
}

// New creates a Menu reading lines from in.
// Reading happens in a separate goroutine so that prompts can be abandoned on cancellation.
func New(cfg *config.Config, cipher *vigenere.Cipher, logger *slog.Logger, in io.Reader, out io.Writer) *Menu {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return &Menu{
		cfg:    cfg,
		cipher: cipher,
		logger: logger,
		out:    out,
		lines:  lines,
	}
}

// Run shows the menu once, or repeatedly when looping is configured,
// until the user interrupts it.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := m.RunOnce(ctx); err != nil {
			return err
		}

		if !m.cfg.Loop {
			return nil
		}

		fmt.Fprintln(m.out)
	}
}

// RunOnce shows the menu, reads one option and carries it out.
// Invalid keys and file errors are reported to the user and are not returned.
func (m *Menu) RunOnce(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Vigenère Encryption and Decryption ===")
	fmt.Fprintln(m.out, "Options:")
	fmt.Fprintln(m.out, "1 - Encrypt message from console")
	fmt.Fprintln(m.out, "2 - Decrypt message from console")
	fmt.Fprintln(m.out, "3 - Encrypt message from file")
	fmt.Fprintln(m.out, "4 - Decrypt message from file")

	option, err := m.prompt(ctx, "Select option (1-4): ")
	if err != nil {
		return err
	}

	option = strings.TrimSpace(option)

	m.logger.Info("option selected", "option", option)

	act, ok := actions[option]
	if !ok {
		fmt.Fprintln(m.out, "Invalid option. Choose a number between 1 and 4.")

		return nil
	}

	if act.source == console {
		err = m.fromConsole(ctx, act.op)
	} else {
		err = m.fromFile(ctx, act.op)
	}

	switch {
	case errors.Is(err, vigenere.ErrInvalidKey):
		m.logger.Error("invalid key", "error", err)
		fmt.Fprintf(m.out, "Error: %v\n", err)

		return nil
	case errors.Is(err, fileutil.ErrIO):
		m.logger.Error(fileutil.Describe(err), "error", err)
		fmt.Fprintf(m.out, "Error: %v\n", err)

		return nil
	}

	return err
}

func (m *Menu) fromConsole(ctx context.Context, op vigenere.Operation) error {
	label := "Enter the message to encrypt: "
	if op == vigenere.OpDecrypt {
		label = "Enter the encrypted message: "
	}

	message, err := m.prompt(ctx, label)
	if err != nil {
		return err
	}

	key, err := m.prompt(ctx, "Enter the key: ")
	if err != nil {
		return err
	}

	result, err := m.transform(op, message, key)
	if err != nil {
		return err
	}

	if op == vigenere.OpDecrypt {
		fmt.Fprintf(m.out, "Decrypted message: %s\n", result)
	} else {
		fmt.Fprintf(m.out, "Encrypted message: %s\n", result)
	}

	return nil
}

func (m *Menu) fromFile(ctx context.Context, op vigenere.Operation) error {
	label, suffix := "Enter the name of the file to encrypt: ", m.cfg.Suffixes.Encrypt
	if op == vigenere.OpDecrypt {
		label, suffix = "Enter the name of the file to decrypt: ", m.cfg.Suffixes.Decrypt
	}

	name, err := m.prompt(ctx, label)
	if err != nil {
		return err
	}

	input := filepath.Join(m.cfg.Dirs.Data, name)
	if !fileutil.IsFile(input) {
		m.logger.Error("file not found", "path", input)
		fmt.Fprintf(m.out, "Error: file %q not found\n", name)

		return nil
	}

	key, err := m.prompt(ctx, "Enter the key: ")
	if err != nil {
		return err
	}

	m.logger.Info("reading file", "path", input)

	text, err := fileutil.ReadText(input)
	if err != nil {
		return err
	}

	result, err := m.transform(op, text, key)
	if err != nil {
		return err
	}

	output := fileutil.OutputPath(m.cfg.Dirs.Results, input, suffix)

	m.logger.Info("writing file", "path", output)

	if _, err := fileutil.WriteText(output, result); err != nil {
		return err
	}

	if op == vigenere.OpDecrypt {
		fmt.Fprintf(m.out, "Decrypted message saved to %s\n", output)
	} else {
		fmt.Fprintf(m.out, "Encrypted message saved to %s\n", output)
	}

	return nil
}

func (m *Menu) transform(op vigenere.Operation, text, key string) (string, error) {
	if op == vigenere.OpDecrypt {
		return m.cipher.Decrypt(text, key)
	}

	return m.cipher.Encrypt(text, key)
}

// prompt writes label and waits for the next input line, without any trailing carriage return.
func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, label)

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-m.lines:
		if !ok {
			return "", ErrInterrupted
		}

		return strings.TrimRight(line, "\r"), nil
	}
}
