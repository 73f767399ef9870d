package ledcodec

import "github.com/BeatGlow/ledcodec/pixel"

// EncodeRGB332 packs RGB888 pixels into 3-3-2 packed RGB bytes, keeping the most
// significant bits of each channel.
//
// The source length must be a multiple of 3 and dst must hold len(src)/3 bytes.
func EncodeRGB332(dst, src []byte) error {
	if len(src)%BytesPerPixel != 0 {
		return ErrInvalidLength
	}
	pixels := len(src) / BytesPerPixel
	if len(dst) < pixels {
		return ErrBufferTooSmall
	}

	for i := 0; i < pixels; i++ {
		dst[i] = pixel.PackRGB332(src[i*3], src[i*3+1], src[i*3+2])
	}
	return nil
}
