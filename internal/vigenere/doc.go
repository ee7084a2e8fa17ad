// Package vigenere implements the classical Vigenère polyalphabetic substitution cipher.
//
// Only the ASCII letters A-Z and a-z are shifted; they keep their case.
// Every other rune, including non-ASCII letters, is passed through unchanged
// and does not consume a key letter. The key is stripped of non-letters before use.
//
// Vigenère offers no security; the package is a string transform.
package vigenere
