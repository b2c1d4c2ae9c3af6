/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mmuldo/chroma"
	"github.com/mmuldo/chroma/deltae"
)

var (
	kl, kc, kh float64
)

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance HEX1 HEX2",
	Short: "Prints the CIEDE2000 distance between two colors",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c1, err := chroma.ParseHex(args[0])
		if err != nil {
			log.Fatal(err)
		}
		c2, err := chroma.ParseHex(args[1])
		if err != nil {
			log.Fatal(err)
		}

		klch := deltae.KLCh{KL: kl, KC: kc, KH: kh}
		fmt.Printf("%.4f\n", deltae.CIE2000(c1.Lab(), c2.Lab(), &klch))
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().Float64Var(&kl, "kl", 1, "lightness weight")
	distanceCmd.Flags().Float64Var(&kc, "kc", 1, "chroma weight")
	distanceCmd.Flags().Float64Var(&kh, "kh", 1, "hue weight")
}
