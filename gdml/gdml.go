// Package gdml reads and writes volume graphs in the GDML geometry
// interchange format. Assembly shapes are bundled as templates with named
// numeric placeholders; a builder substitutes the dimensions resolved from
// metadata and parses the result back into a single logical volume.
package gdml

import (
	"embed"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

//go:embed templates/*.gdml
var templatesFS embed.FS

var placeholderRe = regexp.MustCompile(`@([A-Za-z0-9_]+)@`)

// Template returns the named bundled geometry template.
func Template(name string) ([]byte, error) {
	b, err := templatesFS.ReadFile("templates/" + name + ".gdml")
	if err != nil {
		return nil, errors.NewLookup("geometry template", name, TemplateNames()...)
	}
	return b, nil
}

// TemplateNames returns the sorted names of all bundled templates.
func TemplateNames() []string {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// ReadWithReplacements substitutes the named numeric placeholders into a
// GDML template and parses the result. Exactly one top-level logical volume
// is expected back; anything else is a fatal shape error.
func ReadWithReplacements(
	template []byte, replacements map[string]float64,
) (*registry.LogicalVolume, error) {
	doc := string(template)
	for name, value := range replacements {
		doc = strings.ReplaceAll(doc, "@"+name+"@", formatFloat(value))
	}
	if missing := placeholderRe.FindAllStringSubmatch(doc, -1); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, m := range missing {
			names = append(names, m[1])
		}
		sort.Strings(names)
		return nil, errors.NewLookup(
			"template parameter", strings.Join(names, ", "), sortedKeys(replacements)...,
		)
	}
	return parseVolume(doc)
}

// LoadTemplate resolves a bundled template by name and instantiates it with
// the given parameter substitutions.
func LoadTemplate(name string, replacements map[string]float64) (*registry.LogicalVolume, error) {
	b, err := Template(name)
	if err != nil {
		return nil, err
	}
	lv, err := ReadWithReplacements(b, replacements)
	if shapeErr, ok := err.(*errors.Shape); ok {
		shapeErr.Template = name
	}
	return lv, err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
