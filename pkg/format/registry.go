package format

import (
	"bytes"
	"fmt"
)

const (
	// MagicLen is the length of the magic value at the start of every container.
	MagicLen = 8
	// DefaultIterations is the PBKDF2-SHA256 round count used by both registered generations.
	DefaultIterations = 250_000
)

// Descriptor describes a single container format generation.
type Descriptor struct {
	ID      string
	Magic   [MagicLen]byte
	Version byte
	Label   string
	// Iterations is the PBKDF2 round count implied by this generation.
	Iterations int
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s (%s, version %d)", d.Label, d.ID, d.Version)
}

var (
	FilesealV1 = Descriptor{
		ID:         "fileseal-v1",
		Magic:      MagicString("FILESEAL"),
		Version:    1,
		Label:      "FileSeal v1",
		Iterations: DefaultIterations,
	}
	CryptexV21 = Descriptor{
		ID:         "cryptex-v2.1",
		Magic:      MagicString("CRYPTEX"),
		Version:    2,
		Label:      "Cryptex v2.1",
		Iterations: DefaultIterations,
	}

	registered = [...]Descriptor{FilesealV1, CryptexV21}
	active     = CryptexV21
)

// MagicString null-pads an ASCII magic value to MagicLen bytes.
// It panics if the value is longer than MagicLen, since that's a programming error in the format table.
func MagicString(s string) [MagicLen]byte {
	if len(s) > MagicLen {
		panic(fmt.Sprintf("magic '%s' is longer than %d bytes", s, MagicLen))
	}
	var magic [MagicLen]byte
	copy(magic[:], s)
	return magic
}

// All returns every registered Descriptor in registration order.
func All() []Descriptor {
	all := make([]Descriptor, len(registered))
	copy(all, registered[:])
	return all
}

// Active returns the Descriptor used for all new containers.
func Active() Descriptor {
	return active
}

// Lookup finds the Descriptor with exactly the given magic bytes.
func Lookup(magic []byte) (Descriptor, bool) {
	if len(magic) != MagicLen {
		return Descriptor{}, false
	}
	for _, desc := range registered {
		if bytes.Equal(desc.Magic[:], magic) {
			return desc, true
		}
	}
	return Descriptor{}, false
}
