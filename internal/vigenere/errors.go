package vigenere

import "errors"

// ErrInvalidKey is returned when the key holds no letters after filtering.
var ErrInvalidKey = errors.New("key must contain at least one letter")
