// Package crystal turn per-detector crystal metadata into a solid.
package crystal

import (
	"math"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

// ShapeProvider builds the detector crystal solid from its metadata.
type ShapeProvider interface {
	MakeCrystal(det metadata.DetectorMetadata) (registry.Solid, error)
}

// PolyconeProvider is the default shape provider: a solid of revolution
// from the crystal envelope, with the bore carved into the outline when the
// metadata declares one.
type PolyconeProvider struct{}

// MakeCrystal implements ShapeProvider.
func (PolyconeProvider) MakeCrystal(det metadata.DetectorMetadata) (registry.Solid, error) {
	g := det.HADES.Detector.Geometry
	if g.RadiusInMM <= 0 {
		return registry.Solid{}, &errors.Schema{Field: "hades.detector.geometry.radius_in_mm"}
	}
	if g.HeightInMM <= 0 {
		return registry.Solid{}, &errors.Schema{Field: "hades.detector.geometry.height_in_mm"}
	}

	pc := registry.GenericPolycone{PhiTotal: 2 * math.Pi}
	if g.BoreRadiusInMM > 0 && g.BoreDepthInMM > 0 {
		pc.R = []float64{g.BoreRadiusInMM, g.RadiusInMM, g.RadiusInMM, 0, 0, g.BoreRadiusInMM}
		pc.Z = []float64{0, 0, g.HeightInMM, g.HeightInMM, g.BoreDepthInMM, g.BoreDepthInMM}
	} else {
		pc.R = []float64{0, g.RadiusInMM, g.RadiusInMM, 0}
		pc.Z = []float64{0, 0, g.HeightInMM, g.HeightInMM}
	}
	return registry.Solid{Name: det.Name + "_crystal", Geometry: pc}, nil
}
