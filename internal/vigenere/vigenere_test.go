package vigenere_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/govig/internal/vigenere"
)

// Case is a single vector from the golden file.
type Case struct {
	Description string `yaml:"description"`
	Plaintext   string `yaml:"plaintext"`
	Key         string `yaml:"key"`
	Ciphertext  string `yaml:"ciphertext"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no vector groups found")
	}

	return groups
}

func TestVectors(t *testing.T) {
	t.Parallel()

	for _, group := range loadVectors(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range group.Cases {
				t.Run(tc.Description, func(t *testing.T) {
					t.Parallel()

					got, err := vigenere.Encrypt(tc.Plaintext, tc.Key)
					if err != nil {
						t.Fatalf("Encrypt(%q, %q): %v", tc.Plaintext, tc.Key, err)
					}

					if got != tc.Ciphertext {
						t.Errorf("Encrypt(%q, %q) = %q, want %q", tc.Plaintext, tc.Key, got, tc.Ciphertext)
					}

					back, err := vigenere.Decrypt(tc.Ciphertext, tc.Key)
					if err != nil {
						t.Fatalf("Decrypt(%q, %q): %v", tc.Ciphertext, tc.Key, err)
					}

					if back != tc.Plaintext {
						t.Errorf("Decrypt(%q, %q) = %q, want %q", tc.Ciphertext, tc.Key, back, tc.Plaintext)
					}
				})
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"ATAQUE",
		"Ataque al Amanecer!",
		"PROGRAMACIÓN EN PYTHON ES DIVERTIDA.",
		"line one\nline two\ttabbed 12345",
		strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20),
	}

	keys := []string{"A", "Z", "CLAVE", "Seguridad", "k3y w1th n0ise", "ñandúB"}

	for _, text := range texts {
		for _, key := range keys {
			enc, err := vigenere.Encrypt(text, key)
			if err != nil {
				t.Fatalf("Encrypt(%q, %q): %v", text, key, err)
			}

			if len(enc) != len(text) {
				t.Errorf("Encrypt(%q, %q) changed length: %d -> %d", text, key, len(text), len(enc))
			}

			dec, err := vigenere.Decrypt(enc, key)
			if err != nil {
				t.Fatalf("Decrypt(%q, %q): %v", enc, key, err)
			}

			if dec != text {
				t.Errorf("round trip with key %q: got %q, want %q", key, dec, text)
			}
		}
	}
}

func TestLongPhraseKeepsPunctuation(t *testing.T) {
	t.Parallel()

	const text = "PROGRAMACIÓN EN PYTHON ES DIVERTIDA."

	enc, err := vigenere.Encrypt(text, "SEGURIDAD")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(enc, ".") || strings.Count(enc, " ") != 4 {
		t.Errorf("Encrypt moved non-letters: %q", enc)
	}

	dec, err := vigenere.Decrypt(enc, "SEGURIDAD")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(dec, "PYTHON") || !strings.HasSuffix(dec, "DIVERTIDA.") {
		t.Errorf("Decrypt = %q", dec)
	}
}

func TestEmptyText(t *testing.T) {
	t.Parallel()

	for _, fn := range []func(string, string) (string, error){vigenere.Encrypt, vigenere.Decrypt} {
		got, err := fn("", "CLAVE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string, string) (string, error)
		text string
		key  string
	}{
		{"encrypt empty key", vigenere.Encrypt, "PRUEBA", ""},
		{"decrypt empty key", vigenere.Decrypt, "ABCDEF", ""},
		{"key without letters", vigenere.Encrypt, "PRUEBA", "123 !?"},
		{"non-ascii only key", vigenere.Encrypt, "PRUEBA", "ñÓ"},
		{"empty text still checks key", vigenere.Encrypt, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.fn(tt.text, tt.key)
			if !errors.Is(err, vigenere.ErrInvalidKey) {
				t.Fatalf("got error %v, want %v", err, vigenere.ErrInvalidKey)
			}

			if got != "" {
				t.Errorf("got output %q alongside error", got)
			}
		})
	}
}

func TestAdjustKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		key  string
		want string
	}{
		{"ABCDEF", "XYZ", "XYZXYZ"},
		{"ABCD", "CLAVE", "CLAV"},
		{"Hi there", "ab", "abababa"},
		{"a-b-c", "K.E", "KEK"},
		{"", "KEY", ""},
		{"123 456", "KEY", ""},
	}

	for _, tt := range tests {
		got, err := vigenere.AdjustKey(tt.text, tt.key)
		if err != nil {
			t.Fatalf("AdjustKey(%q, %q): %v", tt.text, tt.key, err)
		}

		if got != tt.want {
			t.Errorf("AdjustKey(%q, %q) = %q, want %q", tt.text, tt.key, got, tt.want)
		}
	}

	if _, err := vigenere.AdjustKey("ABC", " "); !errors.Is(err, vigenere.ErrInvalidKey) {
		t.Errorf("AdjustKey with blank key: got %v, want %v", err, vigenere.ErrInvalidKey)
	}
}

type recorder struct {
	events []vigenere.Event
}

func (r *recorder) Observe(e vigenere.Event) {
	r.events = append(r.events, e)
}

func TestObserver(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	cipher := vigenere.New(vigenere.WithObserver(rec))

	if _, err := cipher.Encrypt("Hello, World", "k-e-y"); err != nil {
		t.Fatal(err)
	}

	if _, err := cipher.Decrypt("abc", "Z"); err != nil {
		t.Fatal(err)
	}

	if _, err := cipher.Encrypt("abc", ""); err == nil {
		t.Fatal("expected error for empty key")
	}

	want := []vigenere.Event{
		{Op: vigenere.OpEncrypt, Letters: 10, KeyLength: 3},
		{Op: vigenere.OpDecrypt, Letters: 3, KeyLength: 1},
	}

	if len(rec.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(rec.events), len(want), rec.events)
	}

	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, rec.events[i], want[i])
		}
	}

	if got := vigenere.OpDecrypt.String(); got != "decrypt" {
		t.Errorf("OpDecrypt.String() = %q", got)
	}
}
