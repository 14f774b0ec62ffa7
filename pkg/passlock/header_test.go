package passlock

import (
	"testing"

	"github.com/saylorsolutions/byteseal/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_Layout(t *testing.T) {
	assert.Equal(t, 37, HeaderLen)

	hdr := Header{Magic: format.CryptexV21.Magic, Version: 2}
	for i := range hdr.Salt {
		hdr.Salt[i] = byte(0x10 + i)
	}
	for i := range hdr.IV {
		hdr.IV[i] = byte(0xa0 + i)
	}
	data, err := hdr.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, HeaderLen)

	assert.Equal(t, []byte("CRYPTEX\x00"), data[0:8])
	assert.Equal(t, byte(2), data[8])
	assert.Equal(t, byte(0x10), data[9])
	assert.Equal(t, byte(0x1f), data[24])
	assert.Equal(t, byte(0xa0), data[25])
	assert.Equal(t, byte(0xab), data[36])

	var decoded Header
	assert.NoError(t, decoded.UnmarshalBinary(append(data, 0xde, 0xad)))
	assert.Equal(t, hdr, decoded)
}

func TestHeader_UnmarshalBinary_Neg(t *testing.T) {
	var hdr Header
	assert.ErrorIs(t, hdr.UnmarshalBinary(nil), ErrInvalidContainer)
	assert.ErrorIs(t, hdr.UnmarshalBinary(make([]byte, HeaderLen-1)), ErrInvalidContainer)
}
