package internal

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PasswordEnv is checked before prompting, for non-interactive use.
const PasswordEnv = "BYTESEAL_PASSWORD"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNoTerminal       = errors.New("stdin is not a terminal, set " + PasswordEnv + " instead")
)

// PasswordFromEnv returns a copy of the password in PasswordEnv, or nil if it's unset or empty.
func PasswordFromEnv() []byte {
	password := os.Getenv(PasswordEnv)
	if password == "" {
		return nil
	}
	return []byte(password)
}

// ReadPassword reads a password from the terminal without echoing.
func ReadPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}
	_, _ = fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// ReadPasswordConfirm reads a password twice and ensures both entries match.
func ReadPasswordConfirm() ([]byte, error) {
	first, err := ReadPassword("Enter password: ")
	if err != nil {
		return nil, err
	}
	second, err := ReadPassword("Confirm password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)
	if subtle.ConstantTimeCompare(first, second) != 1 {
		clear(first)
		return nil, ErrPasswordMismatch
	}
	return first, nil
}

// GetPassword returns the password from PasswordEnv, or prompts for it.
// With confirm set, the prompt asks twice.
// The caller should clear the returned password when done with it.
func GetPassword(confirm bool) ([]byte, error) {
	if password := PasswordFromEnv(); password != nil {
		return password, nil
	}
	if confirm {
		return ReadPasswordConfirm()
	}
	return ReadPassword("Enter password: ")
}
