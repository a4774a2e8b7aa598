package registry

import (
	"encoding/json"

	"github.com/vbiancacci/legend-pygeom-hades/geometry"
)

var solidType = struct {
	box      string
	tube     string
	polycone string
	opaque   string
}{
	box:      "box",
	tube:     "tube",
	polycone: "genericPolycone",
	opaque:   "opaque",
}

// Solid is a named shape. Geometry holds one of the solid geometry variants
// below, tagged by type on the wire.
type Solid struct {
	Name     string        `json:"name" bson:"name"`
	Geometry SolidGeometry `json:"geometry" bson:"geometry"`
}

// SolidGeometry is one of Box, Tube, GenericPolycone or Opaque.
type SolidGeometry interface{}

// Box is a rectangular solid; Size holds the full edge lengths.
type Box struct {
	Size geometry.Vec3D `json:"size" bson:"size"`
}

// Tube is a cylindrical shell section.
type Tube struct {
	InnerRadius float64 `json:"innerRadius" bson:"innerRadius"`
	OuterRadius float64 `json:"outerRadius" bson:"outerRadius"`
	Height      float64 `json:"height" bson:"height"`
}

// GenericPolycone is a solid of revolution described by an (r, z) outline
// swept from PhiStart over PhiTotal radians.
type GenericPolycone struct {
	PhiStart float64   `json:"phiStart" bson:"phiStart"`
	PhiTotal float64   `json:"phiTotal" bson:"phiTotal"`
	R        []float64 `json:"r" bson:"r"`
	Z        []float64 `json:"z" bson:"z"`
}

// Opaque carries a solid parsed from an interchange file that the registry
// does not model structurally. Raw holds the original XML element so a
// round trip preserves it bit-for-bit.
type Opaque struct {
	Kind string `json:"kind" bson:"kind"`
	Raw  string `json:"raw" bson:"raw"`
}

// MarshalJSON tags the geometry variant by type.
func (s Solid) MarshalJSON() ([]byte, error) {
	var kind string
	switch s.Geometry.(type) {
	case Box:
		kind = solidType.box
	case Tube:
		kind = solidType.tube
	case GenericPolycone:
		kind = solidType.polycone
	case Opaque:
		kind = solidType.opaque
	}
	return json.Marshal(struct {
		Name     string        `json:"name"`
		Type     string        `json:"type"`
		Geometry SolidGeometry `json:"geometry"`
	}{
		Name:     s.Name,
		Type:     kind,
		Geometry: s.Geometry,
	})
}
