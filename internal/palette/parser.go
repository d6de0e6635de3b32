package palette

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/chromatone/internal/color"
	chromatoneerrors "github.com/alexisbeaulieu97/chromatone/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is the on-disk palette format. YAML is the canonical syntax;
// since YAML is a superset of JSON the same loader accepts .json files.
type Document struct {
	Version string       `yaml:"version,omitempty" validate:"omitempty,semver"`
	Name    string       `yaml:"name" validate:"required,min=1,max=100"`
	Colors  []ColorEntry `yaml:"colors" validate:"required,min=1,dive"`
}

// ColorEntry is a single color declaration in a palette document.
type ColorEntry struct {
	Name  string `yaml:"name" validate:"required,color_name"`
	Value string `yaml:"value" validate:"required"`
}

// ParseFile loads a palette document from disk, validates it, and converts it
// to the in-memory model.
func ParseFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chromatoneerrors.NewParseError(path, 0, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, chromatoneerrors.NewParseError(path, extractLine(err), err)
	}

	return doc.ToPalette()
}

// ToPalette validates the document and resolves every color value to the
// in-memory Color model with its derived OKLCH triple.
func (d *Document) ToPalette() (Palette, error) {
	if err := validateDocument(d); err != nil {
		return nil, err
	}

	out := make(Palette, 0, len(d.Colors))
	for i, entry := range d.Colors {
		rgb, err := color.Parse(entry.Value)
		if err != nil {
			return nil, chromatoneerrors.NewValidationError(fieldForColor(i, "value"), err.Error(), err)
		}
		out = append(out, NewColor(entry.Name, rgb))
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
