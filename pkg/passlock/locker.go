package passlock

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/byteseal/pkg/format"
)

var (
	ErrInvalidContainer   = errors.New("invalid container")
	ErrUnknownFormat      = errors.New("unknown container format")
	ErrUnsupportedVersion = errors.New("unsupported container version")
	ErrDecryptionFailed   = errors.New("decryption failed, wrong password or corrupted container")
	ErrMalformedMetadata  = errors.New("malformed container metadata")
)

// Unlocked is the result of successfully opening a container.
type Unlocked struct {
	Data   Plaintext
	Meta   Metadata
	Format format.Descriptor
}

// Lock encrypts the file data and its metadata into a new container using the active format.
// A fresh Salt and IV are generated for every call.
func Lock(data Plaintext, meta Metadata, pass Passphrase) (Encrypted, error) {
	return lockFormat(format.Active(), data, meta, pass)
}

func lockFormat(desc format.Descriptor, data Plaintext, meta Metadata, pass Passphrase) (Encrypted, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	gen, err := NewKeyGenerator(desc)
	if err != nil {
		return nil, err
	}
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}
	hdr := Header{
		Magic:   desc.Magic,
		Version: desc.Version,
	}
	copy(hdr.Salt[:], salt)
	if _, err := io.ReadFull(rand.Reader, hdr.IV[:]); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	key, err := gen.DeriveKey(pass, salt)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	payload, err := encodePayload(meta, data)
	if err != nil {
		return nil, err
	}
	defer clear(payload)
	return seal(key, &hdr, payload)
}

func seal(key Key, hdr *Header, payload Plaintext) (Encrypted, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	out, err := hdr.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return gcm.Seal(out, hdr.IV[:], payload, nil), nil
}

// Inspect validates the container header without deriving a key.
// The returned Descriptor is the format the header was matched against.
func Inspect(data Encrypted) (Header, format.Descriptor, error) {
	var hdr Header
	if err := hdr.UnmarshalBinary(data); err != nil {
		return Header{}, format.Descriptor{}, err
	}
	desc, ok := format.Lookup(hdr.Magic[:])
	if !ok {
		return Header{}, format.Descriptor{}, fmt.Errorf("%w: magic %q", ErrUnknownFormat, hdr.Magic[:])
	}
	if hdr.Version != desc.Version {
		return Header{}, format.Descriptor{}, fmt.Errorf("%w: %s expects version %d, container has version %d", ErrUnsupportedVersion, desc.Label, desc.Version, hdr.Version)
	}
	return hdr, desc, nil
}

// Unlock opens a container of any registered format with the given passphrase.
// Authentication failure is the only signal of a wrong passphrase, and is reported as ErrDecryptionFailed.
func Unlock(data Encrypted, pass Passphrase) (*Unlocked, error) {
	hdr, desc, err := Inspect(data)
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	gen, err := NewKeyGenerator(desc)
	if err != nil {
		return nil, err
	}
	key, err := gen.DeriveKey(pass, hdr.Salt[:])
	if err != nil {
		return nil, err
	}
	defer clear(key)

	plain, meta, err := open(key, &hdr, data[HeaderLen:])
	if err != nil {
		return nil, err
	}
	return &Unlocked{
		Data:   plain,
		Meta:   meta,
		Format: desc,
	}, nil
}

func open(key Key, hdr *Header, cipherText []byte) (Plaintext, Metadata, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, Metadata{}, err
	}
	payload, err := gcm.Open(nil, hdr.IV[:], cipherText, nil)
	if err != nil {
		return nil, Metadata{}, ErrDecryptionFailed
	}
	meta, plain, err := decodePayload(payload)
	if err != nil {
		return nil, Metadata{}, err
	}
	return plain, meta, nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
