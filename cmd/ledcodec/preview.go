package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewWidthFlag, `width`, `w`, 0, `pixels per row (default: one row)`)
	previewCmd.Flags().BoolVar(&previewTrueColorFlag, `truecolor`, false, `force 24-bit colors, even when not writing to a terminal`)
}

var previewCmd = &cobra.Command{
	Use:   previewCmdStr + ` <hsl|rgb332|none|segments> <input>`,
	Short: `show decoded pixels in the terminal`,
	Long: `Show decoded pixels in the terminal, two character cells per pixel.

The segments format shows one row of 188 pixels per digit.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(previewFunc(args))
	},
}

var (
	previewCmdStr        = "preview"
	previewWidthFlag     int
	previewTrueColorFlag bool
)

func previewFunc(args []string) func() error {
	return func() error {
		var img image.Image
		if args[0] == segmentsCmdStr {
			d, err := decodeSegments(args[1], 0)
			if err != nil {
				return err
			}
			img = d
		} else {
			i, _, err := decodeStream(args[0], args[1], previewWidthFlag)
			if err != nil {
				return err
			}
			img = i
		}

		var opts []termenv.OutputOption
		if previewTrueColorFlag {
			opts = append(opts, termenv.WithProfile(termenv.TrueColor))
		}
		printImage(os.Stdout, img, opts...)
		return nil
	}
}

// printImage writes every pixel as two spaces on a background of the pixel color.
func printImage(w io.Writer, img image.Image, opts ...termenv.OutputOption) {
	var (
		out  = termenv.NewOutput(w, opts...)
		rect = img.Bounds()
		line strings.Builder
	)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		line.Reset()
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := out.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
			line.WriteString(out.String("  ").Background(c).String())
		}
		line.WriteByte('\n')
		_, _ = io.WriteString(w, line.String())
	}
}
