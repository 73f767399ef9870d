// Package ledcodec decodes compressed color streams into RGB888 pixel buffers for LED fixtures.
//
// Two stream formats are supported: hue/lightness pairs (2 bytes per pixel, saturation fixed
// at 100%) and packed 3-3-2 RGB (1 byte per pixel). Hue/lightness pairs can also be scattered
// over the segments of a multi-digit segment display, see [ScatterSegments].
//
// All decoders work on caller-owned slices and never allocate.
package ledcodec

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("LEDCODEC_DEBUG") != ""
}

// SetDebug toggles debug logging, which is also enabled by setting LEDCODEC_DEBUG.
func SetDebug(v bool) {
	debug = v
}

// Errors
var (
	ErrInvalidLength  = errors.New("ledcodec: invalid input length")
	ErrBufferTooSmall = errors.New("ledcodec: buffer too small")
	ErrBounds         = errors.New("ledcodec: out of buffer bounds")
)

// BytesPerPixel is the size of one decoded RGB888 pixel.
const BytesPerPixel = 3
