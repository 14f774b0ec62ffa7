package passlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePayload(t *testing.T) {
	payload, err := encodePayload(Metadata{Name: "a&b.txt", Type: "text/plain"}, Plaintext("hi!!!"))
	require.NoError(t, err)

	metaJSON := `{"name":"a&b.txt","type":"text/plain"}`
	assert.Equal(t, []byte{0, 0, 0, byte(len(metaJSON))}, []byte(payload[:4]))
	assert.Equal(t, metaJSON, string(payload[4:4+len(metaJSON)]))
	assert.Equal(t, "hi!!!", string(payload[4+len(metaJSON):]))

	meta, data, err := decodePayload(payload)
	assert.NoError(t, err)
	assert.Equal(t, Metadata{Name: "a&b.txt", Type: "text/plain"}, meta)
	assert.Equal(t, "hi!!!", string(data))
}

func TestDecodePayload_ExtraFields(t *testing.T) {
	metaJSON := `{"type":"image/png","name":"x.png","size":12}`
	payload := append([]byte{0, 0, 0, byte(len(metaJSON))}, metaJSON...)
	meta, data, err := decodePayload(append(payload, 0x89, 'P', 'N', 'G'))
	assert.NoError(t, err)
	assert.Equal(t, Metadata{Name: "x.png", Type: "image/png"}, meta)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, []byte(data))
}

func TestDecodePayload_Neg(t *testing.T) {
	withLen := func(n byte, rest string) Plaintext {
		return append(Plaintext{0, 0, 0, n}, rest...)
	}
	tests := map[string]Plaintext{
		"empty":            nil,
		"short length":     {0, 0, 1},
		"length overflow":  {0xff, 0xff, 0xff, 0xff, '{', '}'},
		"length past end":  withLen(40, `{"name":"a","type":"b"}`),
		"bad json":         withLen(9, `{"name":1`),
		"not an object":    withLen(5, `"str"`),
		"null":             withLen(4, `null`),
		"missing type":     withLen(12, `{"name":"a"}`),
		"missing name":     withLen(12, `{"type":"a"}`),
		"null name":        withLen(24, `{"name":null,"type":"a"}`),
		"wrong field type": withLen(21, `{"name":1,"type":"a"}`),
		"invalid utf8":     append(Plaintext{0, 0, 0, 24}, append([]byte(`{"name":"`), 0xff, 0xfe, '"', ',', '"', 't', 'y', 'p', 'e', '"', ':', '"', 'a', '"', '}')...),
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := decodePayload(payload)
			assert.ErrorIs(t, err, ErrMalformedMetadata)
		})
	}
}
