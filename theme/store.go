package theme

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/flosch/pongo2"
)

// Save writes t as JSON under dir, keyed by name.
func Save(t Theme, dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(dir, name), b, 0644)
}

// Load reads the theme named name from dir.
func Load(dir, name string) (Theme, error) {
	b, err := ioutil.ReadFile(path.Join(dir, name))
	if err != nil {
		return nil, err
	}

	t := make(Theme)
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("theme %s is not valid JSON: %v", name, err)
	}

	return t, nil
}

// Render executes the pongo2 template at templatePath with t as its
// context.
func Render(templatePath string, t Theme) (string, error) {
	tpl, err := pongo2.FromFile(templatePath)
	if err != nil {
		return "", err
	}

	return tpl.Execute(pongo2.Context(t))
}
