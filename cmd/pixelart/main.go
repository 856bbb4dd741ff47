package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	pixelart "github.com/0x6b/gbc-image-transform"
	"github.com/0x6b/gbc-image-transform/utils"
)

var (
	output           string
	pixelationFactor int
	numColors        int
	transparent      bool
	width            int
	height           int
	paletteMethod    string
)

var rootCmd = &cobra.Command{
	Use:   "pixelart <image>",
	Short: "Convert an image into a low-color pixel-art rendition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := utils.ParsePaletteMethod(paletteMethod)
		if err != nil {
			return err
		}

		input := args[0]
		log.Printf("loading image from %s", input)
		img, err := utils.ReadImage(input)
		if err != nil {
			return err
		}

		log.Println("pixelating image")
		out, err := pixelart.Pixelate(img, pixelationFactor, width, height)
		if err != nil {
			return err
		}

		log.Println("finding palette")
		palette := utils.ExtractPalette(out, numColors, transparent, method)

		log.Println("reducing colors")
		pixelart.ReduceColors(out, palette)

		log.Printf("saving image to %s", output)
		if err := utils.SaveImage(out, output); err != nil {
			return fmt.Errorf("encode %s: %w", output, err)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&output, "output", "o", "output.png", "path to the output image")
	flags.IntVarP(&pixelationFactor, "pixelation-factor", "p", 4, "downscale ratio; larger values result in more pixelation")
	flags.IntVarP(&numColors, "num-colors", "n", 56, "number of colors to use")
	flags.BoolVarP(&transparent, "transparent", "t", false, "include transparent pixels in the color palette")
	flags.IntVarP(&width, "width", "W", 0, "output width; height is derived when not given")
	flags.IntVarP(&height, "height", "H", 0, "output height; width is derived when not given")
	flags.StringVarP(&paletteMethod, "palette-method", "m", "kmeans", "palette extraction method (kmeans or dominantcolor)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
