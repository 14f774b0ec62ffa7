package passlock

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/saylorsolutions/byteseal/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyGenerator(t *testing.T) {
	gen, err := NewKeyGenerator(format.Active())
	assert.NoError(t, err)
	assert.Equal(t, format.DefaultIterations, gen.iterations)
	assert.Equal(t, AES256KeySize, gen.keySize)

	gen, err = NewKeyGenerator(format.FilesealV1, SetIterations(1000))
	assert.NoError(t, err)
	assert.Equal(t, 1000, gen.iterations)

	_, err = NewKeyGenerator(format.Active(), SetIterations(0))
	assert.Error(t, err)
	_, err = NewKeyGenerator(format.Descriptor{ID: "broken"})
	assert.Error(t, err)
}

func TestKeyGenerator_DeriveKey(t *testing.T) {
	gen, err := NewKeyGenerator(format.Active())
	require.NoError(t, err)
	salt := Salt(bytes.Repeat([]byte{0x5a}, SaltSize))

	key, err := gen.DeriveKey(Passphrase("correct-horse"), salt)
	assert.NoError(t, err)
	assert.Len(t, key, int(AES256KeySize))

	again, err := gen.DeriveKey(Passphrase("correct-horse"), salt)
	assert.NoError(t, err)
	assert.Equal(t, key, again, "Derivation must be deterministic for the same passphrase and salt")

	other, err := gen.DeriveKey(Passphrase("correct-horse"), Salt(bytes.Repeat([]byte{0xa5}, SaltSize)))
	assert.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestKeyGenerator_DeriveKey_KnownAnswer(t *testing.T) {
	gen, err := NewKeyGenerator(format.Active())
	require.NoError(t, err)
	key, err := gen.DeriveKey(Passphrase("correct-horse"), Salt(bytes.Repeat([]byte{0x5a}, SaltSize)))
	require.NoError(t, err)
	assert.Equal(t, "92d3acd772f47103485dfc58812904d5b1d392e56d552a0a7da79685b9e12f71", hex.EncodeToString(key))
}

func TestKeyGenerator_DeriveKey_Neg(t *testing.T) {
	gen, err := NewKeyGenerator(format.Active())
	require.NoError(t, err)

	_, err = gen.DeriveKey(nil, make(Salt, SaltSize))
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
	_, err = gen.DeriveKey(Passphrase("pass"), make(Salt, SaltSize-1))
	assert.Error(t, err)
}

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	assert.NoError(t, err)
	assert.Len(t, a, SaltSize)
	b, err := GenerateSalt()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateSalt_Neg(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenerateSalt()
	assert.Error(t, err)
}
