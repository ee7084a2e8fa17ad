package processor_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/fileutil"
	"github.com/idelchi/govig/internal/processor"
	"github.com/idelchi/govig/internal/vigenere"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()

	return &config.Config{
		Key:      "CLAVE",
		Parallel: 2,
		Dirs:     config.Dirs{Data: root, Results: filepath.Join(root, "1_Resultados")},
		Suffixes: config.Suffixes{Encrypt: "_cifrado", Decrypt: "_descifrado"},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func write(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestProcessFilesRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)

	originals := map[string]string{
		"mensaje.txt": "Mensaje de prueba.",
		"ataque.txt":  "ATAQUE",
		"vacio.txt":   "",
	}

	for name, content := range originals {
		path := filepath.Join(cfg.Dirs.Data, name)
		write(t, path, content+"\n")
		cfg.Files = append(cfg.Files, path)
	}

	var out bytes.Buffer

	proc, err := processor.New(cfg, vigenere.New(), discard(), &out, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	processed, errored, _, err := proc.ProcessFiles(context.Background())
	if err != nil || processed != 3 || errored != 0 {
		t.Fatalf("encrypt: processed=%d errored=%d err=%v", processed, errored, err)
	}

	got, err := fileutil.ReadText(filepath.Join(cfg.Dirs.Results, "ataque_cifrado.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if got != "CEALYG" {
		t.Errorf("ataque_cifrado.txt = %q, want %q", got, "CEALYG")
	}

	if strings.Count(out.String(), "Processed") != 3 {
		t.Errorf("unexpected progress output: %q", out.String())
	}

	// Decrypt the encrypted outputs back.
	decCfg := *cfg
	decCfg.Decrypt = true
	decCfg.Files = nil

	for name := range originals {
		decCfg.Files = append(decCfg.Files, fileutil.OutputPath(cfg.Dirs.Results, name, "_cifrado"))
	}

	proc, err = processor.New(&decCfg, vigenere.New(), discard(), io.Discard, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := proc.ProcessFiles(context.Background()); err != nil {
		t.Fatal(err)
	}

	for name, content := range originals {
		stem := strings.TrimSuffix(name, ".txt")
		path := filepath.Join(cfg.Dirs.Results, stem+"_cifrado_descifrado.txt")

		got, err := fileutil.ReadText(path)
		if err != nil {
			t.Fatal(err)
		}

		if got != content {
			t.Errorf("%s = %q, want %q", path, got, content)
		}
	}
}

func TestProcessFilesContinuesAfterError(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.Quiet = true

	good := filepath.Join(cfg.Dirs.Data, "good.txt")
	write(t, good, "hola")

	cfg.Files = []string{filepath.Join(cfg.Dirs.Data, "missing.txt"), good}

	var errOut bytes.Buffer

	proc, err := processor.New(cfg, vigenere.New(), discard(), io.Discard, &errOut)
	if err != nil {
		t.Fatal(err)
	}

	processed, errored, _, err := proc.ProcessFiles(context.Background())
	if !errors.Is(err, fileutil.ErrIO) {
		t.Fatalf("got %v, want ErrIO", err)
	}

	if processed != 1 || errored != 1 {
		t.Errorf("processed=%d errored=%d, want 1 and 1", processed, errored)
	}

	if !strings.Contains(errOut.String(), "missing.txt") {
		t.Errorf("error output = %q", errOut.String())
	}
}

func TestNewRejectsInvalidKey(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.Key = "1234"

	if _, err := processor.New(cfg, vigenere.New(), discard(), io.Discard, io.Discard); !errors.Is(err, vigenere.ErrInvalidKey) {
		t.Fatalf("got %v, want %v", err, vigenere.ErrInvalidKey)
	}
}

func TestNewRejectsOutputCollision(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)

	for _, dir := range []string{"a", "b"} {
		if err := os.MkdirAll(filepath.Join(cfg.Dirs.Data, dir), 0o755); err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(cfg.Dirs.Data, dir, "msg.txt")
		write(t, path, "mensaje "+dir)
		cfg.Files = append(cfg.Files, path)
	}

	_, err := processor.New(cfg, vigenere.New(), discard(), io.Discard, io.Discard)
	if !errors.Is(err, processor.ErrOutputCollision) {
		t.Fatalf("got %v, want %v", err, processor.ErrOutputCollision)
	}

	if !strings.Contains(err.Error(), "msg_cifrado.txt") {
		t.Errorf("error does not name the shared output: %v", err)
	}

	if _, err := os.Stat(cfg.Dirs.Results); !os.IsNotExist(err) {
		t.Errorf("results directory created despite the collision: %v", err)
	}
}
