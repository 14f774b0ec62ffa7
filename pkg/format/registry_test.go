package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagicUnique(t *testing.T) {
	seen := map[[MagicLen]byte]string{}
	for _, desc := range All() {
		other, ok := seen[desc.Magic]
		assert.False(t, ok, "Magic of %s collides with %s", desc.ID, other)
		seen[desc.Magic] = desc.ID
	}
}

func TestActive(t *testing.T) {
	assert.Equal(t, CryptexV21, Active())
	for _, desc := range All() {
		assert.LessOrEqual(t, desc.Version, Active().Version, "Active format should be the newest generation")
	}
}

func TestLookup(t *testing.T) {
	desc, ok := Lookup([]byte("CRYPTEX\x00"))
	assert.True(t, ok)
	assert.Equal(t, CryptexV21, desc)
	assert.Equal(t, byte(2), desc.Version)

	desc, ok = Lookup([]byte("FILESEAL"))
	assert.True(t, ok)
	assert.Equal(t, FilesealV1, desc)
	assert.Equal(t, byte(1), desc.Version)
}

func TestLookup_Neg(t *testing.T) {
	tests := map[string][]byte{
		"nil":          nil,
		"short":        []byte("CRYPTEX"),
		"long":         []byte("FILESEAL!"),
		"unknown":      []byte("NOTMAGIC"),
		"wrong pad":    []byte("CRYPTEX "),
		"lower case":   []byte("fileseal"),
		"all zero pad": make([]byte, MagicLen),
	}
	for name, magic := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := Lookup(magic)
			assert.False(t, ok)
		})
	}
}

func TestMagicString(t *testing.T) {
	assert.Equal(t, [MagicLen]byte{'C', 'R', 'Y', 'P', 'T', 'E', 'X', 0}, MagicString("CRYPTEX"))
	assert.Panics(t, func() {
		MagicString("TOO-LONG-MAGIC")
	})
}

func TestAll_Copy(t *testing.T) {
	all := All()
	all[0].Label = "changed"
	assert.Equal(t, "FileSeal v1", All()[0].Label)
}
