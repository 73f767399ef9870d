package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledcodec"
	"github.com/BeatGlow/ledcodec/pixel"
)

var rootCmd = &cobra.Command{
	Use:          "ledcodec",
	Short:        "decode and encode compressed LED pixel data",
	Long:         "Decode and encode compressed LED pixel data (hue/lightness pairs and 3-3-2 packed RGB).",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			ledcodec.SetDebug(true)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag bool
	orderFlag string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().StringVarP(&orderFlag, `order`, `o`, `RGB`, `color channel order of the pixel data on the wire (RGB, GRB, ...)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		}
		log.Fatal(err)
	}
}

func channelOrder() (pixel.ChannelOrder, error) {
	return pixel.ParseChannelOrder(orderFlag)
}
