// Package runs resolve radioactive-source placements from the measurement
// run database.
package runs

import (
	_ "embed"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

//go:embed samples/runs.yaml
var sampleRunsYAML []byte

// SampleDB returns the bundled run database covering the public sample
// detectors.
func SampleDB() (*DB, error) {
	var detectors map[string]map[string]map[string]measurementRuns
	if err := yaml.Unmarshal(sampleRunsYAML, &detectors); err != nil {
		return nil, err
	}
	return &DB{detectors: detectors}, nil
}

// SourcePosition is a source placement row: polar position over the
// cryostat plus the vertical offset.
type SourcePosition struct {
	PhiInDeg float64 `yaml:"phi_in_deg" json:"phiInDeg"`
	RInMM    float64 `yaml:"r_in_mm" json:"rInMM"`
	ZInMM    float64 `yaml:"z_in_mm" json:"zInMM"`
}

type runRecord struct {
	SourcePosition SourcePosition `yaml:"source_position"`
}

// run ids ("run0001") -> rows
type measurementRuns map[string]runRecord

// DB is the run database, keyed detector / campaign / measurement / run.
// Loaded fresh per construction pass; never shared mutable state.
type DB struct {
	detectors map[string]map[string]map[string]measurementRuns
}

// Load decodes a run database from YAML.
func Load(r io.Reader) (*DB, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var detectors map[string]map[string]map[string]measurementRuns
	if err := yaml.Unmarshal(b, &detectors); err != nil {
		return nil, err
	}
	return &DB{detectors: detectors}, nil
}

// LoadFile decodes a run database from a YAML file.
func LoadFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// measurement returns the run rows for one detector/campaign/measurement,
// with a lookup error naming the alternatives at the failing level.
func (db *DB) measurement(detector, campaign, meas string) (measurementRuns, error) {
	campaigns, ok := db.detectors[detector]
	if !ok {
		return nil, errors.NewLookup("detector", detector, sortedKeys(db.detectors)...)
	}
	measurements, ok := campaigns[campaign]
	if !ok {
		return nil, errors.NewLookup("campaign", campaign, sortedKeys(campaigns)...)
	}
	rns, ok := measurements[meas]
	if !ok {
		return nil, errors.NewLookup("measurement", meas, sortedKeys(measurements)...)
	}
	return rns, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
