package main

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/BeatGlow/ledcodec/pixel"
)

const zstdExt = ".zst"

// readInput reads a whole file, or stdin for "-". Files ending in .zst are decompressed.
func readInput(name string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errorsGo.Wrap(err, 0)
		}
		defer f.Close()
		r = f
	}

	if strings.HasSuffix(name, zstdExt) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errorsGo.Wrap(err, 0)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	return data, nil
}

// readImage decodes an image in any of the registered formats.
func readImage(name string) (image.Image, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errorsGo.Errorf("%s: %v", name, err)
	}
	return img, nil
}

// writeOutput writes raw bytes to a file, or stdout for "-". Files ending in .zst are compressed.
func writeOutput(name string, data []byte) (err error) {
	var w io.Writer = os.Stdout
	if name != "-" {
		var f *os.File
		if f, err = os.Create(name); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errorsGo.Wrap(cerr, 0)
			}
		}()
		w = f
	}

	if strings.HasSuffix(name, zstdExt) {
		var enc *zstd.Encoder
		if enc, err = zstd.NewWriter(w); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		if _, err = enc.Write(data); err != nil {
			_ = enc.Close()
			return errorsGo.Wrap(err, 0)
		}
		if err = enc.Close(); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		return nil
	}

	if _, err = w.Write(data); err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return nil
}

// writePixels writes decoded pixels. Image file names get an image in that format,
// anything else gets the raw pixel bytes in wire order.
func writePixels(name string, img *pixel.RGBImage, size int) error {
	var (
		buf bytes.Buffer
		err error
	)
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(name, zstdExt))) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return writeOutput(name, img.Pix[:size])
	}
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return writeOutput(name, buf.Bytes())
}
