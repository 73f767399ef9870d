package main

import (
	"log"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledcodec"
	"github.com/BeatGlow/ledcodec/pixel"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().IntVarP(&decodeWidthFlag, `width`, `w`, 0, `pixels per row of image output (default: one row)`)
}

var decodeCmd = &cobra.Command{
	Use:   decodeCmdStr + ` <hsl|rgb332|none> <input> <output>`,
	Short: `decode a compressed pixel stream`,
	Long: `Decode a compressed pixel stream into RGB888 pixels.

The output is written as raw pixel bytes in wire order, or as an image when the output
name ends in .png, .bmp or .tiff; --order gives the channel order of the wire data. Use - for stdin or stdout, names
ending in .zst are (de)compressed with zstd.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		run(decodeFunc(args))
	},
}

var (
	decodeCmdStr    = "decode"
	decodeWidthFlag int
)

func decodeFunc(args []string) func() error {
	return func() error {
		img, size, err := decodeStream(args[0], args[1], decodeWidthFlag)
		if err != nil {
			return err
		}
		return writePixels(args[2], img, size)
	}
}

// decodeStream decodes the input file into an image of the given width. It returns the
// image and the number of pixel bytes decoded.
func decodeStream(compression, name string, width int) (*pixel.RGBImage, int, error) {
	c, err := ledcodec.ParseCompression(compression)
	if err != nil {
		return nil, 0, errorsGo.Wrap(err, 0)
	}
	order, err := channelOrder()
	if err != nil {
		return nil, 0, errorsGo.Wrap(err, 0)
	}
	data, err := readInput(name)
	if err != nil {
		return nil, 0, err
	}

	bpp := c.BytesPerPixel()
	if len(data) == 0 || len(data)%bpp != 0 {
		return nil, 0, errorsGo.Errorf("%s: %d bytes is not a whole number of %s pixels", name, len(data), c)
	}
	pixels := len(data) / bpp
	if width <= 0 || width > pixels {
		width = pixels
	}

	img := pixel.NewRGBImage(width, (pixels+width-1)/width)
	if err = c.Decode(img.Pix, data); err != nil {
		return nil, 0, errorsGo.Wrap(err, 0)
	}
	// Pixel data arrives in wire order, the order only changes how colors read back.
	img.Order = order

	if debugFlag {
		log.Printf("decoded %d %s pixels into %s", pixels, c, img.Bounds())
	}
	return img, pixels * ledcodec.BytesPerPixel, nil
}
