package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ticketassist/internal/models"
)

// LoadTaxonomy loads the macro taxonomy YAML file at path.
// Returns nil without error if the file doesn't exist.
func LoadTaxonomy(path string) (*models.MacroTaxonomy, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Taxonomy file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseTaxonomy(data)
}

// ParseTaxonomy decodes taxonomy YAML, dropping macros without a name.
func ParseTaxonomy(data []byte) (*models.MacroTaxonomy, error) {
	var t models.MacroTaxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	macros := t.Macros[:0]
	for _, m := range t.Macros {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			continue
		}
		macros = append(macros, m)
	}
	t.Macros = macros

	return &t, nil
}
