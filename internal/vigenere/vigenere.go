package vigenere

import "strings"

const alphabetSize = 26

// Operation identifies the direction of a transform.
type Operation int

const (
	// OpEncrypt shifts letters forward by the key.
	OpEncrypt Operation = iota
	// OpDecrypt shifts letters backward by the key.
	OpDecrypt
)

// String returns the lowercase name of the operation.
func (o Operation) String() string {
	if o == OpDecrypt {
		return "decrypt"
	}

	return "encrypt"
}

// Event describes a completed transform.
type Event struct {
	// Op is the direction of the transform
	Op Operation

	// Letters is the number of letters shifted
	Letters int

	// KeyLength is the number of letters in the filtered key
	KeyLength int
}

// Observer is notified after every successful transform.
type Observer interface {
	Observe(Event)
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithObserver attaches an observer to the Cipher.
func WithObserver(observer Observer) Option {
	return func(c *Cipher) {
		c.observer = observer
	}
}

// Cipher performs Vigenère transforms. The zero value is ready to use.
// A Cipher holds no per-call state and is safe for concurrent use
// as long as its observer is.
type Cipher struct {
	observer Observer
}

// New creates a Cipher with the given options.
func New(opts ...Option) *Cipher {
	c := &Cipher{}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Encrypt shifts every letter of text forward by the aligned key letter.
func (c *Cipher) Encrypt(text, key string) (string, error) {
	return c.transform(OpEncrypt, text, key)
}

// Decrypt shifts every letter of text backward by the aligned key letter.
func (c *Cipher) Decrypt(text, key string) (string, error) {
	return c.transform(OpDecrypt, text, key)
}

func (c *Cipher) transform(op Operation, text, key string) (string, error) {
	adjusted, err := AdjustKey(text, key)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	builder.Grow(len(text))

	idx := 0

	for _, r := range text {
		if !isLetter(r) {
			builder.WriteRune(r)

			continue
		}

		k := index(rune(adjusted[idx]))
		if op == OpDecrypt {
			k = alphabetSize - k
		}

		builder.WriteRune(shift(r, k))

		idx++
	}

	if c != nil && c.observer != nil {
		c.observer.Observe(Event{Op: op, Letters: idx, KeyLength: len(filterKey(key))})
	}

	return builder.String(), nil
}

// AdjustKey strips key down to its letters and tiles it to exactly one
// key letter per letter of text.
func AdjustKey(text, key string) (string, error) {
	filtered := filterKey(key)
	if filtered == "" {
		return "", ErrInvalidKey
	}

	n := countLetters(text)
	if n == 0 {
		return "", nil
	}

	return strings.Repeat(filtered, n/len(filtered)+1)[:n], nil
}

// Encrypt encrypts text with key using a Cipher without observer.
func Encrypt(text, key string) (string, error) {
	return (*Cipher)(nil).Encrypt(text, key)
}

// Decrypt decrypts text with key using a Cipher without observer.
func Decrypt(text, key string) (string, error) {
	return (*Cipher)(nil).Decrypt(text, key)
}

func filterKey(key string) string {
	return strings.Map(func(r rune) rune {
		if isLetter(r) {
			return r
		}

		return -1
	}, key)
}

func countLetters(text string) int {
	n := 0

	for _, r := range text {
		if isLetter(r) {
			n++
		}
	}

	return n
}

func isLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// index returns the zero-based alphabet position of a letter, ignoring case.
func index(r rune) int {
	if r >= 'a' {
		return int(r - 'a')
	}

	return int(r - 'A')
}

// shift rotates letter r by k positions, keeping its case.
func shift(r rune, k int) rune {
	base := 'A'
	if r >= 'a' {
		base = 'a'
	}

	return base + rune((int(r-base)+k)%alphabetSize)
}
