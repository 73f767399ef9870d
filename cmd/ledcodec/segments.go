package main

import (
	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledcodec"
)

func init() {
	rootCmd.AddCommand(segmentsCmd)
	segmentsCmd.Flags().IntVarP(&segmentsDigitsFlag, `digits`, `n`, 0, `number of digits (default: derived from the input length)`)
}

var segmentsCmd = &cobra.Command{
	Use:   segmentsCmdStr + ` <input> <output>`,
	Short: `map hue/lightness segment colors onto a segment display pixel buffer`,
	Long: `Map hue/lightness segment colors onto a segment display pixel buffer.

The input holds one hue, lightness byte pair for each of the 32 segments of every digit.
The output holds 188 pixels per digit, as raw bytes or as an image with one row per digit.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(segmentsFunc(args))
	},
}

var (
	segmentsCmdStr     = "segments"
	segmentsDigitsFlag int
)

func segmentsFunc(args []string) func() error {
	return func() error {
		d, err := decodeSegments(args[0], segmentsDigitsFlag)
		if err != nil {
			return err
		}
		return writePixels(args[1], d.RGBImage, len(d.Pix))
	}
}

func decodeSegments(name string, digits int) (*ledcodec.SegmentDisplay, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}

	if digits <= 0 {
		digits = len(data) / (ledcodec.SegmentsPerDigit * 2)
	}
	d, err := ledcodec.NewSegmentDisplay(digits)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	if err = d.Update(data); err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	return d, nil
}
