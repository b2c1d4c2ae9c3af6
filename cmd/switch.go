/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chroma/theme"
)

var (
	terminal string
)

// per-app config file locations, relative to $HOME
var appConfigs = map[string]string{
	"termite":   path.Join(".config", "termite", "config"),
	"alacritty": path.Join(".config", "alacritty", "alacritty.yml"),
}

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Applies a saved theme to an app's config",
	Long: `Applies a saved theme: the app's config template (under
templates/ in the themes directory) is rendered with the theme's
colors and written over the app's config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaults()

		rel, ok := appConfigs[terminal]
		if !ok {
			fmt.Println(fmt.Errorf("'%s' is not a supported app", terminal))
			os.Exit(1)
		}

		if err := apply(rel, name); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringVarP(&terminal, "terminal", "t", "", "user terminal")
}

func setDefaults() {
	if terminal == "" {
		terminal = viper.GetString("terminal")
	}
}

// apply renders the template for relpath with the named theme and
// writes the result to $HOME/relpath.
func apply(relpath string, themeName string) error {
	t, err := theme.Load(themesDir, themeName)
	if err != nil {
		return err
	}

	out, err := theme.Render(path.Join(themesDir, "templates", relpath), t)
	if err != nil {
		return err
	}

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(home, relpath), []byte(out), 0644)
}
