// Package seedfile reads an optional yaml file of bookmarks grouped by
// category, used to fill an empty account in one import.
package seedfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses a seed file from disk.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the file and parses it into a Config.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", l.path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", l.path, err)
	}
	return cfg, nil
}
