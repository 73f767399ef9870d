package ledcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRGB332(t *testing.T) {
	src := []byte{
		0xff, 0xff, 0xff,
		0x00, 0x00, 0x00,
		36, 0x00, 0x00,
		0x30, 0x80, 0x7f,
	}
	dst := make([]byte, 4)
	require.NoError(t, EncodeRGB332(dst, src))
	assert.Equal(t, []byte{0xff, 0x00, 0x20, 0x31}, dst)
}

func TestEncodeRGB332Errors(t *testing.T) {
	assert.ErrorIs(t, EncodeRGB332(make([]byte, 1), make([]byte, 4)), ErrInvalidLength)
	assert.ErrorIs(t, EncodeRGB332(make([]byte, 1), make([]byte, 6)), ErrBufferTooSmall)
}

func TestEncodeRGB332FixedPoint(t *testing.T) {
	src := make([]byte, 256*3)
	for i := range src {
		src[i] = byte(i * 13)
	}

	var (
		packed  = make([]byte, 256)
		decoded = make([]byte, 256*3)
		again   = make([]byte, 256)
	)
	require.NoError(t, EncodeRGB332(packed, src))
	require.NoError(t, DecodeRGB332(decoded, packed))
	require.NoError(t, EncodeRGB332(again, decoded))
	assert.Equal(t, packed, again)
}
