// Package methods loads the optional catalog of permitted disinfection
// methods from a YAML file. Without a catalog, methods are free text.
package methods

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Method struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

type Catalog struct {
	Methods []Method `yaml:"methods"`
}

// Load reads a catalog file. An empty path returns a nil catalog,
// meaning no method restriction.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read methods file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse methods file: %w", err)
	}
	if len(catalog.Methods) == 0 {
		return nil, fmt.Errorf("methods file %s lists no methods", path)
	}

	return &catalog, nil
}

// Contains reports whether name is a permitted method. A nil catalog
// permits everything.
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return true
	}
	for _, m := range c.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}
