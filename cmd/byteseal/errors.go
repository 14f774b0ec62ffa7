package main

import (
	"context"
	"errors"

	"github.com/saylorsolutions/byteseal/cmd/internal"
	"github.com/saylorsolutions/byteseal/pkg/passlock"
)

var errWeakPassword = errors.New("password is too weak")

// describe turns an error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, passlock.ErrInvalidContainer):
		return "invalid container, the file is too short to be a byteseal container"
	case errors.Is(err, passlock.ErrUnknownFormat):
		return "unknown container format, this is not a byteseal container"
	case errors.Is(err, passlock.ErrUnsupportedVersion):
		return err.Error()
	case errors.Is(err, passlock.ErrDecryptionFailed):
		return "decryption failed, the password is wrong or the container is corrupted"
	case errors.Is(err, passlock.ErrMalformedMetadata):
		return "the container's file metadata is corrupted"
	case errors.Is(err, passlock.ErrEmptyPassPhrase):
		return "a password is required"
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out waiting for the operation to finish"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, internal.ErrExists):
		return err.Error() + ", use --force to replace it"
	default:
		return err.Error()
	}
}
