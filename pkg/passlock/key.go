package passlock

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/byteseal/pkg/format"
	"golang.org/x/crypto/pbkdf2"
)

const (
	AES256KeySize uint8 = 256 / 8
	SaltSize            = 16
	IVSize              = 12
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
)

// Key is an AES key that can be used to encrypt or decrypt a container payload.
type Key []byte

// Salt is a slice of secure random bytes that is used with PBKDF2 to generate a Key from a Passphrase.
type Salt []byte

// Passphrase is a human-readable string used to generate a Key.
type Passphrase []byte

// Encrypted is a complete container, header included.
type Encrypted []byte

// Plaintext is an unencrypted payload.
type Plaintext []byte

// KeyGenerator derives keys with the parameters implied by a container format generation.
type KeyGenerator struct {
	iterations int
	keySize    uint8
}

type GeneratorOpt = func(*KeyGenerator) error

// SetIterations overrides the iteration count implied by the format.
// Containers written with a non-default count can't be opened by anything that doesn't use the same override.
func SetIterations(iterations int) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations < 1 {
			return errors.New("iterations must be at least 1")
		}
		gen.iterations = iterations
		return nil
	}
}

// NewKeyGenerator creates a KeyGenerator for the given format generation.
func NewKeyGenerator(desc format.Descriptor, opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations: desc.Iterations,
		keySize:    AES256KeySize,
	}
	if gen.iterations < 1 {
		return nil, fmt.Errorf("format %s doesn't declare an iteration count", desc.ID)
	}
	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateSalt creates a new random Salt with the OS entropy source.
func GenerateSalt() (Salt, error) {
	salt := make(Salt, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey stretches the passphrase into an AES-256 Key with PBKDF2-SHA256.
// This doesn't ensure that the given passphrase is the *correct* passphrase, only authenticated decryption can do that.
func (g *KeyGenerator) DeriveKey(pass Passphrase, salt Salt) (Key, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	return pbkdf2.Key(pass, salt, g.iterations, int(g.keySize), sha256.New), nil
}
