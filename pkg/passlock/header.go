package passlock

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/byteseal/pkg/format"
)

const (
	// HeaderLen is the fixed length of a container header: magic, version, salt, and IV.
	HeaderLen = format.MagicLen + 1 + SaltSize + IVSize
)

// Header is the unencrypted prefix of every container.
type Header struct {
	Magic   [format.MagicLen]byte
	Version byte
	Salt    [SaltSize]byte
	IV      [IVSize]byte
}

func (h *Header) mapper() bin.Mapper {
	return bin.MapSequence(
		fixedBytes(h.Magic[:]),
		bin.Byte(&h.Version),
		fixedBytes(h.Salt[:]),
		fixedBytes(h.IV[:]),
	)
}

// MarshalBinary encodes the header in container order.
func (h *Header) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderLen)
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the first HeaderLen bytes of data.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderLen {
		return fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrInvalidContainer, len(data), HeaderLen)
	}
	return h.mapper().Read(bytes.NewReader(data[:HeaderLen]), binary.BigEndian)
}

// fixedBytes maps a byte slice of a known length verbatim, without a length prefix.
type fixedBytes []byte

func (f fixedBytes) Read(r io.Reader, _ binary.ByteOrder) error {
	_, err := io.ReadFull(r, f)
	return err
}

func (f fixedBytes) Write(w io.Writer, _ binary.ByteOrder) error {
	_, err := w.Write(f)
	return err
}
