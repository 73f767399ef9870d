package ledcodec

import (
	"fmt"
	"log"
	"strings"

	"github.com/BeatGlow/ledcodec/pixel"
)

// Compression is the format of the pixel data a fixture receives.
type Compression uint8

// Supported compressions.
const (
	NoCompression     Compression = iota // 3 bytes per pixel, RGB888
	RGB332Compression                    // 1 byte per pixel, 3-3-2 packed RGB
	HSLCompression                       // 2 bytes per pixel, hue and lightness
)

var compressionNames = [...]string{
	NoCompression:     "none",
	RGB332Compression: "rgb332",
	HSLCompression:    "hsl",
}

// ParseCompression parses a compression name: none (or rgb, rgb888), rgb332 or hsl.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none", "rgb", "rgb888":
		return NoCompression, nil
	case "rgb332":
		return RGB332Compression, nil
	case "hsl":
		return HSLCompression, nil
	default:
		return NoCompression, fmt.Errorf("ledcodec: invalid compression %q", s)
	}
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", c)
}

// BytesPerPixel is the encoded size of one pixel, or 0 for an unknown compression.
func (c Compression) BytesPerPixel() int {
	switch c {
	case NoCompression:
		return 3
	case RGB332Compression:
		return 1
	case HSLCompression:
		return 2
	default:
		return 0
	}
}

// Decode decodes src into RGB888 pixels in dst.
func (c Compression) Decode(dst, src []byte) error {
	switch c {
	case NoCompression:
		if len(dst) < len(src) {
			return ErrBufferTooSmall
		}
		copy(dst, src)
		return nil
	case RGB332Compression:
		return DecodeRGB332(dst, src)
	case HSLCompression:
		return DecodeHSL(dst, src)
	default:
		return fmt.Errorf("ledcodec: invalid compression %s", c)
	}
}

// StripConfig is the LED strip configuration.
type StripConfig struct {
	// Length of the strip in pixels.
	Length int

	// Compression of the pixel data passed to Update.
	Compression Compression

	// Order of the color channels on the wire.
	Order pixel.ChannelOrder
}

// DefaultStripConfig are the default configuration values.
var DefaultStripConfig = StripConfig{
	Length:      60,
	Compression: NoCompression,
	Order:       pixel.OrderRGB,
}

// Strip is a single row of LEDs.
//
// The pixel buffer holds the colors in wire order, ready to be clocked out. Senders
// reorder the channels before compressing, so decoded data is already in wire order;
// Order only applies to At, Set and Fill.
type Strip struct {
	*pixel.RGBImage
	compression Compression
}

// NewStrip allocates the pixel buffer for a strip. A nil config uses [DefaultStripConfig].
func NewStrip(config *StripConfig) (*Strip, error) {
	if config == nil {
		config = new(StripConfig)
		*config = DefaultStripConfig
	}
	if config.Length <= 0 {
		return nil, fmt.Errorf("ledcodec: invalid strip length %d", config.Length)
	}
	if config.Compression.BytesPerPixel() == 0 {
		return nil, fmt.Errorf("ledcodec: invalid compression %s", config.Compression)
	}

	s := &Strip{
		RGBImage:    pixel.NewRGBImage(config.Length, 1),
		compression: config.Compression,
	}
	s.Order = config.Order
	if debug {
		log.Printf("ledcodec: %s using %d bytes", s, len(s.Pix))
	}
	return s, nil
}

func (s *Strip) String() string {
	return fmt.Sprintf("LED strip of %d pixels (compression %s, order %s)", s.Len(), s.compression, s.Order)
}

// Len is the number of pixels.
func (s *Strip) Len() int {
	return s.Rect.Dx()
}

// Compression of the pixel data accepted by Update.
func (s *Strip) Compression() Compression {
	return s.compression
}

// Update decodes a full frame of pixel data into the pixel buffer.
//
// The data must hold exactly one encoded pixel per LED.
func (s *Strip) Update(data []byte) error {
	if want := s.Len() * s.compression.BytesPerPixel(); len(data) != want {
		if debug {
			log.Printf("ledcodec: %s rejected %d bytes of pixel data", s, len(data))
		}
		return fmt.Errorf("%w: got %d bytes of %s pixel data, expected %d", ErrInvalidLength, len(data), s.compression, want)
	}
	return s.compression.Decode(s.Pix, data)
}

// SegmentDisplay is a chain of digits, each wired as DigitPixels LEDs split in segments.
//
// The pixel buffer is an image with one row per digit, in RGB order.
type SegmentDisplay struct {
	*pixel.RGBImage
}

// NewSegmentDisplay allocates the pixel buffer for a segment display.
func NewSegmentDisplay(digits int) (*SegmentDisplay, error) {
	if digits <= 0 {
		return nil, fmt.Errorf("ledcodec: invalid digit count %d", digits)
	}

	d := &SegmentDisplay{
		RGBImage: pixel.NewRGBImage(DigitPixels, digits),
	}
	if debug {
		log.Printf("ledcodec: %s using %d bytes", d, len(d.Pix))
	}
	return d, nil
}

func (d *SegmentDisplay) String() string {
	return fmt.Sprintf("segment display of %d digits", d.Digits())
}

// Digits is the number of digits.
func (d *SegmentDisplay) Digits() int {
	return d.Rect.Dy()
}

// Update scatters one hue, lightness pair per segment over all digits.
//
// The data must hold exactly 2 bytes for each of the 32 segments of every digit.
func (d *SegmentDisplay) Update(data []byte) error {
	if want := d.Digits() * SegmentsPerDigit * 2; len(data) != want {
		if debug {
			log.Printf("ledcodec: %s rejected %d bytes of segment data", d, len(data))
		}
		return fmt.Errorf("%w: got %d bytes of segment data, expected %d", ErrInvalidLength, len(data), want)
	}
	_, err := ScatterSegments(d.Pix, data)
	return err
}
