/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mmuldo/chroma/palette"
	"github.com/mmuldo/chroma/theme"

	imgx "github.com/mmuldo/chroma/image"
)

var (
	imagePath string
	numColors int
	swatch    string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a new theme from image",
	Long: `Creates a new theme from image: the image is quantized down to a
base palette, dark colors are delegated to the low roles and light
colors to the high ones, and the result is saved under the themes
directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		img, err := imgx.Load(imagePath)
		if err != nil {
			log.Fatal(err)
		}

		cvs, err := palette.FromImage(img, numColors)
		if err != nil {
			log.Fatal(err)
		}
		sort.Sort(palette.ByCount(cvs))

		p, err := theme.Delegate(cvs)
		if err != nil {
			log.Fatal(err)
		}

		t, err := theme.Create(p, nil)
		if err != nil {
			log.Fatal(err)
		}

		if err := theme.Save(t, themesDir, name); err != nil {
			log.Fatal(err)
		}

		printPalette(p)

		if swatch != "" {
			if err := writeSwatch(cvs, swatch); err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&imagePath, "image", "i", "", "source image")
	createCmd.Flags().IntVarP(&numColors, "colors", "c", 16, "palette size")
	createCmd.Flags().StringVar(&swatch, "swatch", "", "write a swatch preview PNG to this path")
	createCmd.MarkFlagRequired("image")
}

// printPalette shows each role in its own color using truecolor
// escapes.
func printPalette(p theme.Palette) {
	keys := make([]int, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		r, g, b, _ := p[k].RGB.RGBA()
		fmt.Printf("\033[38;2;%d;%d;%dm color%d = #%02x%02x%02x\033[0m\n",
			uint8(r>>8), uint8(g>>8), uint8(b>>8), k,
			uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

// writeSwatch tiles the palette into a PNG, 200px per square, four
// squares per row.
func writeSwatch(cvs []palette.ColorVol, path string) error {
	const cell = 200
	const perRow = 4

	rows := (len(cvs) + perRow - 1) / perRow
	img := image.NewRGBA(image.Rect(0, 0, perRow*cell, rows*cell))

	for i, cv := range cvs {
		x0 := (i % perRow) * cell
		y0 := (i / perRow) * cell
		for x := x0; x < x0+cell; x++ {
			for y := y0; y < y0+cell; y++ {
				img.Set(x, y, cv.RGB)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
