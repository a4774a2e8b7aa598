package metadata

import (
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

const hadesTableFile = "hades_dimensions.yaml"

// HADESTable is the supplementary per-detector dimension table, keyed by
// detector name the same way as the metadata store.
type HADESTable map[string]HADES

// LoadHADESTable decodes a dimension table from YAML.
func LoadHADESTable(r io.Reader) (HADESTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var table HADESTable
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadHADESTableFile decodes a dimension table from a YAML file.
func LoadHADESTableFile(path string) (HADESTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadHADESTable(f)
}

// DefaultHADESTable returns the bundled table covering the sample
// detectors.
func DefaultHADESTable() (HADESTable, error) {
	b, err := samplesFS.ReadFile("samples/" + hadesTableFile)
	if err != nil {
		return nil, err
	}
	var table HADESTable
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Get resolves the record for a detector. Unknown names fall back to the
// sample detector of the same type before failing, mirroring the public
// store proxy.
func (t HADESTable) Get(name string) (HADES, error) {
	if h, ok := t[name]; ok {
		return h, nil
	}
	if name != "" {
		if h, ok := t[sampleName(name)]; ok {
			return h, nil
		}
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return HADES{}, errors.NewLookup("hades dimensions for detector", name, keys...)
}
