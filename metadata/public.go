package metadata

import (
	"embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

//go:embed samples/*.yaml
var samplesFS embed.FS

// PublicStore serves bundled sample records instead of the internal
// hardware metadata. Any detector name resolves to the sample record of the
// same type (first letter plus "99000A"), renamed to the requested name and
// pinned to placeholder production order 0, slice "A".
type PublicStore struct {
	samples map[string]DetectorMetadata
}

// NewPublicStore loads the bundled sample records.
func NewPublicStore() (*PublicStore, error) {
	entries, err := samplesFS.ReadDir("samples")
	if err != nil {
		return nil, err
	}
	samples := map[string]DetectorMetadata{}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".yaml") || e.Name() == hadesTableFile {
			continue
		}
		b, err := samplesFS.ReadFile("samples/" + e.Name())
		if err != nil {
			return nil, err
		}
		var det DetectorMetadata
		if err := yaml.Unmarshal(b, &det); err != nil {
			return nil, err
		}
		samples[det.Name] = det
	}
	return &PublicStore{samples: samples}, nil
}

// Get implements Store. The returned record is a fresh value per call.
func (s *PublicStore) Get(name string) (DetectorMetadata, error) {
	if name == "" {
		return DetectorMetadata{}, errors.NewLookup("detector", name, s.sampleNames()...)
	}
	det, ok := s.samples[sampleName(name)]
	if !ok {
		return DetectorMetadata{}, errors.NewLookup("detector", name, s.sampleNames()...)
	}
	det.Name = name
	det.Production.Order = 0
	det.Production.Slice = "A"
	return det, nil
}

func (s *PublicStore) sampleNames() []string {
	names := make([]string, 0, len(s.samples))
	for name := range s.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sampleName maps any detector name onto the bundled sample of the same
// type, eg "V07302A" -> "V99000A".
func sampleName(name string) string {
	return name[:1] + "99000A"
}
