package ledcodec

import "github.com/BeatGlow/ledcodec/pixel"

// DecodeHSL decodes a stream of hue, lightness byte pairs into RGB888 pixels.
//
// The source must have an even length and dst must hold at least len(src)/2*3 bytes,
// otherwise [ErrInvalidLength] or [ErrBufferTooSmall] is returned and dst is not touched.
func DecodeHSL(dst, src []byte) error {
	if len(src)&1 != 0 {
		return ErrInvalidLength
	}
	pixels := len(src) >> 1
	if len(dst) < pixels*BytesPerPixel {
		return ErrBufferTooSmall
	}

	for i := 0; i < pixels; i++ {
		r, g, b := pixel.HL{H: src[i*2], L: src[i*2+1]}.RGB()
		dst[i*3], dst[i*3+1], dst[i*3+2] = r, g, b
	}
	return nil
}

// DecodeRGB332 decodes a stream of 3-3-2 packed RGB bytes into RGB888 pixels.
//
// Every byte is a valid pixel; dst must hold at least 3*len(src) bytes, otherwise
// [ErrBufferTooSmall] is returned and dst is not touched.
func DecodeRGB332(dst, src []byte) error {
	if len(dst) < len(src)*BytesPerPixel {
		return ErrBufferTooSmall
	}

	for i, v := range src {
		r, g, b := pixel.RGB332{V: v}.RGB()
		dst[i*3], dst[i*3+1], dst[i*3+2] = r, g, b
	}
	return nil
}
