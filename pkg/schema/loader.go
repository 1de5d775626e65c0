package schema

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Override adjusts the presentation of a single builtin field. The wire name
// and the field type are fixed by the service contract and cannot be changed.
type Override struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Placeholder string   `yaml:"placeholder"`
	Options     []string `yaml:"options"`
}

type overridesDocument struct {
	Fields []Override `yaml:"fields"`
}

// ApplyOverrides reads a YAML overrides document and returns a copy of the
// catalog with labels, help text, placeholders, and categorical option lists
// replaced where the document names them. Unknown field names and option
// overrides on numeric fields are rejected so typos surface at startup instead
// of as silently missing inputs.
func ApplyOverrides(catalog Catalog, r io.Reader) (Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schema: read overrides: %w", err)
	}

	var doc overridesDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse overrides: %w", err)
	}

	out := catalog.Clone()
	for _, override := range doc.Fields {
		name := strings.TrimSpace(override.Name)
		if name == "" {
			return nil, fmt.Errorf("schema: override entry is missing a field name")
		}

		idx := -1
		for i, field := range out {
			if field.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("schema: override references unknown field %q", name)
		}

		if label := strings.TrimSpace(override.Label); label != "" {
			out[idx].Label = label
		}
		if desc := strings.TrimSpace(override.Description); desc != "" {
			out[idx].Description = desc
		}
		if placeholder := strings.TrimSpace(override.Placeholder); placeholder != "" {
			out[idx].Placeholder = placeholder
		}
		if len(override.Options) > 0 {
			if out[idx].Numeric() {
				return nil, fmt.Errorf("schema: field %q is numeric and takes no options", name)
			}
			options := make([]string, 0, len(override.Options))
			for _, option := range override.Options {
				if trimmed := strings.TrimSpace(option); trimmed != "" {
					options = append(options, trimmed)
				}
			}
			if len(options) == 0 {
				return nil, fmt.Errorf("schema: field %q override has no usable options", name)
			}
			out[idx].Options = options
		}
	}
	return out, nil
}
