package main

import (
	"image"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledcodec"
	"github.com/BeatGlow/ledcodec/draw"
	"github.com/BeatGlow/ledcodec/pixel"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().IntVarP(&encodeWidthFlag, `width`, `w`, 0, `output width in pixels (default: image width)`)
	encodeCmd.Flags().IntVarP(&encodeHeightFlag, `height`, `H`, 0, `output height in pixels (default: image height)`)
}

var encodeCmd = &cobra.Command{
	Use:   encodeCmdStr + ` <hsl|rgb332|none> <image> <output>`,
	Short: `encode an image into a compressed pixel stream`,
	Long: `Encode an image into a compressed pixel stream, row by row.

The image is resampled when --width or --height differ from its size; a strip is an
image with a height of 1. Channels are put in the order given by --order before
compressing, as the receiving strip expects.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		run(encodeFunc(args))
	},
}

var (
	encodeCmdStr     = "encode"
	encodeWidthFlag  int
	encodeHeightFlag int
)

func encodeFunc(args []string) func() error {
	return func() error {
		c, err := ledcodec.ParseCompression(args[0])
		if err != nil {
			return errorsGo.Wrap(err, 0)
		}
		order, err := channelOrder()
		if err != nil {
			return errorsGo.Wrap(err, 0)
		}
		src, err := readImage(args[1])
		if err != nil {
			return err
		}

		size := src.Bounds().Size()
		if encodeWidthFlag > 0 {
			size.X = encodeWidthFlag
		}
		if encodeHeightFlag > 0 {
			size.Y = encodeHeightFlag
		}

		out, err := encodeImage(c, order, src, size)
		if err != nil {
			return err
		}
		return writeOutput(args[2], out)
	}
}

// encodeImage resamples src to size and encodes it. The channels are put in wire order
// before compressing, the receiving end never reorders.
func encodeImage(c ledcodec.Compression, order pixel.ChannelOrder, src image.Image, size image.Point) ([]byte, error) {
	rgb := pixel.NewRGBImage(size.X, size.Y)
	if size.Eq(src.Bounds().Size()) {
		draw.Draw(rgb, rgb.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.Scale(rgb, src)
	}
	order.Swizzle(rgb.Pix)

	switch c {
	case ledcodec.RGB332Compression:
		out := make([]byte, size.X*size.Y)
		if err := ledcodec.EncodeRGB332(out, rgb.Pix); err != nil {
			return nil, errorsGo.Wrap(err, 0)
		}
		return out, nil
	case ledcodec.HSLCompression:
		hl := pixel.NewHLImage(size.X, size.Y)
		draw.Draw(hl, hl.Bounds(), rgb, image.Point{}, draw.Src)
		return hl.Pix, nil
	default:
		return rgb.Pix, nil
	}
}
