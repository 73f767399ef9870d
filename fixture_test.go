package ledcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/ledcodec/pixel"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want Compression
	}{
		{"", NoCompression},
		{"none", NoCompression},
		{"RGB888", NoCompression},
		{"rgb332", RGB332Compression},
		{"HSL", HSLCompression},
	}
	for _, tt := range tests {
		v, err := ParseCompression(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}

	_, err := ParseCompression("rgb565")
	assert.Error(t, err)
	assert.Equal(t, "Compression(9)", Compression(9).String())
	assert.Equal(t, 0, Compression(9).BytesPerPixel())
}

func TestNewStrip(t *testing.T) {
	s, err := NewStrip(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultStripConfig.Length, s.Len())
	assert.Len(t, s.Pix, DefaultStripConfig.Length*3)
	assert.Equal(t, NoCompression, s.Compression())

	_, err = NewStrip(&StripConfig{Length: 0})
	assert.Error(t, err)

	_, err = NewStrip(&StripConfig{Length: 1, Compression: Compression(9)})
	assert.Error(t, err)
}

func TestStripUpdate(t *testing.T) {
	tests := []struct {
		name   string
		config StripConfig
		data   []byte
		want   []byte
	}{
		{
			name:   "uncompressed",
			config: StripConfig{Length: 2},
			data:   []byte{1, 2, 3, 4, 5, 6},
			want:   []byte{1, 2, 3, 4, 5, 6},
		},
		{
			name:   "uncompressed GRB",
			config: StripConfig{Length: 2, Order: pixel.OrderGRB},
			data:   []byte{1, 2, 3, 4, 5, 6},
			want:   []byte{1, 2, 3, 4, 5, 6},
		},
		{
			name:   "rgb332",
			config: StripConfig{Length: 2, Compression: RGB332Compression},
			data:   []byte{0x20, 0x03},
			want:   []byte{36, 0, 0, 0, 0, 0xff},
		},
		{
			name:   "hsl BGR",
			config: StripConfig{Length: 1, Compression: HSLCompression, Order: pixel.OrderBGR},
			data:   []byte{0, 128},
			want:   []byte{0xff, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrip(&tt.config)
			require.NoError(t, err)
			require.NoError(t, s.Update(tt.data))
			assert.Equal(t, tt.want, s.Pix)
		})
	}
}

func TestStripUpdateInvalidLength(t *testing.T) {
	s, err := NewStrip(&StripConfig{Length: 4, Compression: HSLCompression})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Update(make([]byte, 6)), ErrInvalidLength)
	assert.ErrorIs(t, s.Update(make([]byte, 12)), ErrInvalidLength)
	assert.NoError(t, s.Update(make([]byte, 8)))
}

func TestStripImage(t *testing.T) {
	s, err := NewStrip(&StripConfig{Length: 3, Order: pixel.OrderGRB})
	require.NoError(t, err)
	require.NoError(t, s.Update([]byte{20, 10, 30, 0, 0, 0, 0, 0, 0}))
	assert.Equal(t, pixel.RGB{R: 10, G: 20, B: 30}, s.At(0, 0))
}

func TestStripWireOrder(t *testing.T) {
	// A BGR sender reorders (0, 100, 200) to (200, 100, 0) before packing it.
	wire := []byte{200, 100, 0}
	packed := make([]byte, 1)
	require.NoError(t, EncodeRGB332(packed, wire))

	s, err := NewStrip(&StripConfig{Length: 1, Compression: RGB332Compression, Order: pixel.OrderBGR})
	require.NoError(t, err)
	require.NoError(t, s.Update(packed))
	assert.Equal(t, []byte{219, 109, 0}, s.Pix, "decoded bytes stay in wire order")
	assert.Equal(t, pixel.RGB{R: 0, G: 109, B: 219}, s.At(0, 0))

	// Uncompressed frames pass through untouched.
	s, err = NewStrip(&StripConfig{Length: 2, Order: pixel.OrderGRB})
	require.NoError(t, err)
	frame := []byte{20, 10, 30, 1, 2, 3}
	require.NoError(t, s.Update(frame))
	assert.Equal(t, frame, s.Pix)
}

func TestSegmentDisplay(t *testing.T) {
	_, err := NewSegmentDisplay(0)
	assert.Error(t, err)

	d, err := NewSegmentDisplay(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Digits())
	assert.Len(t, d.Pix, 2*DigitBytes)

	assert.ErrorIs(t, d.Update(make([]byte, 64)), ErrInvalidLength)

	data := make([]byte, 128)
	for i := 0; i < len(data); i += 2 {
		data[i+1] = 128
	}
	require.NoError(t, d.Update(data))
	assert.Equal(t, bytes.Repeat([]byte{0xff, 0, 0}, 2*DigitPixels), d.Pix, "every pixel belongs to a segment")

	d.Clear()
	assert.Equal(t, make([]byte, 2*DigitBytes), d.Pix)
}

func TestSegmentDisplayPixels(t *testing.T) {
	d, err := NewSegmentDisplay(1)
	require.NoError(t, err)

	data := make([]byte, 64)
	data[1] = 128
	require.NoError(t, d.Update(data))

	// Segment 0 covers pixels 38 through 47 of the first row.
	assert.Equal(t, pixel.RGB{R: 0xff}, d.At(38, 0))
	assert.Equal(t, []byte{0xff, 0, 0}, d.Pix[38*3:39*3])
	assert.Equal(t, pixel.RGB{}, d.At(37, 0))
}
