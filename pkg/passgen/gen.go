package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	Lower   = "abcdefghijkmnopqrstuvwxyz"
	Upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Digits  = "23456789"
	Symbols = "!@#$%^&*-_=+?"
	All     = Lower + Upper + Digits + Symbols

	DefaultLength = 24
	MinLength     = 22
	perClass      = 2
)

// Generate creates a password of at least MinLength characters containing every character class.
func Generate(length int) (string, error) {
	length = max(length, MinLength)
	chars := make([]byte, 0, length)
	for _, class := range []string{Lower, Upper, Digits, Symbols} {
		picked, err := pick(class, perClass)
		if err != nil {
			return "", err
		}
		chars = append(chars, picked...)
	}
	rest, err := pick(All, length-len(chars))
	if err != nil {
		return "", err
	}
	chars = append(chars, rest...)

	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

// FromAlphabet creates a string of the given length with characters drawn uniformly from the alphabet.
// The alphabet is treated as bytes, and may hold at most 256 distinct characters.
func FromAlphabet(alphabet string, length int) (string, error) {
	if len(alphabet) == 0 {
		return "", errors.New("asked to generate from an empty alphabet")
	}
	if len(alphabet) > 256 {
		return "", fmt.Errorf("alphabet of %d characters is too large", len(alphabet))
	}
	if length <= 0 {
		return "", errors.New("asked to generate a 0-length password")
	}
	chars, err := pick(alphabet, length)
	if err != nil {
		return "", err
	}
	return string(chars), nil
}

func pick(alphabet string, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		idx, err := randInt(len(alphabet))
		if err != nil {
			return nil, err
		}
		out[i] = alphabet[idx]
	}
	return out, nil
}

// randInt returns a uniform value in [0, n) for 0 < n <= 256.
// Bytes at or above the largest multiple of n are discarded to avoid modulo bias.
func randInt(n int) (int, error) {
	limit := 256 - (256 % n)
	var buf [1]byte
	for {
		if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
			return 0, fmt.Errorf("failed to read random bytes: %w", err)
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}
