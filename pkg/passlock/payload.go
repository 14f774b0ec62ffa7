package passlock

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	bin "github.com/saylorsolutions/binmap"
)

const metaLenSize = 4

// Metadata describes the original file so it can be restored with the same name and MIME type.
type Metadata struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// wireMetadata detects missing keys, which a plain Metadata can't distinguish from empty values.
type wireMetadata struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

func encodePayload(meta Metadata, data Plaintext) (Plaintext, error) {
	var metaBuf bytes.Buffer
	enc := json.NewEncoder(&metaBuf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(meta); err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	metaJSON := bytes.TrimSuffix(metaBuf.Bytes(), []byte("\n"))
	if uint64(len(metaJSON)) > math.MaxUint32 {
		return nil, fmt.Errorf("metadata is too large: %d bytes", len(metaJSON))
	}

	metaLen := uint32(len(metaJSON))
	var buf bytes.Buffer
	buf.Grow(metaLenSize + len(metaJSON) + len(data))
	if err := bin.Int(&metaLen).Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	buf.Write(metaJSON)
	buf.Write(data)
	return buf.Bytes(), nil
}

func decodePayload(payload Plaintext) (Metadata, Plaintext, error) {
	var metaLen uint32
	if len(payload) < metaLenSize {
		return Metadata{}, nil, fmt.Errorf("%w: payload is too short to hold a metadata length", ErrMalformedMetadata)
	}
	if err := bin.Int(&metaLen).Read(bytes.NewReader(payload[:metaLenSize]), binary.BigEndian); err != nil {
		return Metadata{}, nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	rest := payload[metaLenSize:]
	if uint64(metaLen) > uint64(len(rest)) {
		return Metadata{}, nil, fmt.Errorf("%w: metadata length %d exceeds the remaining %d bytes", ErrMalformedMetadata, metaLen, len(rest))
	}
	metaJSON := rest[:metaLen]
	if !utf8.Valid(metaJSON) {
		return Metadata{}, nil, fmt.Errorf("%w: metadata is not valid UTF-8", ErrMalformedMetadata)
	}

	var wire wireMetadata
	if err := json.Unmarshal(metaJSON, &wire); err != nil {
		return Metadata{}, nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	if wire.Name == nil || wire.Type == nil {
		return Metadata{}, nil, fmt.Errorf("%w: metadata must contain 'name' and 'type'", ErrMalformedMetadata)
	}
	return Metadata{Name: *wire.Name, Type: *wire.Type}, rest[metaLen:], nil
}
