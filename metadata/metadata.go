// Package metadata provide detector hardware metadata: the per-detector
// records fetched from the metadata store, the supplementary HADES
// dimension tables, and the merge combining the two into one record per
// construction pass.
package metadata

// DetectorType enumerates the germanium detector geometries.
type DetectorType string

// Known detector types. Only bege and icpc detectors were ever measured on
// the HADES test stand.
const (
	DetectorTypeBeGe DetectorType = "bege"
	DetectorTypeICPC DetectorType = "icpc"
	DetectorTypeCoax DetectorType = "coax"
	DetectorTypePPC  DetectorType = "ppc"
)

// Production describe the detector production batch. Enrichment of zero
// means the store reported none; the merge substitutes 0.9.
type Production struct {
	Order      int     `yaml:"order" json:"order" bson:"order"`
	Slice      string  `yaml:"slice" json:"slice" bson:"slice"`
	Enrichment float64 `yaml:"enrichment" json:"enrichment" bson:"enrichment"`
}

// DetectorMetadata is the fully merged per-detector record. Created once
// per construction pass and immutable afterwards.
type DetectorMetadata struct {
	Name       string       `yaml:"name" json:"name" bson:"name"`
	Type       DetectorType `yaml:"type" json:"type" bson:"type"`
	Production Production   `yaml:"production" json:"production" bson:"production"`
	HADES      HADES        `yaml:"hades" json:"hades" bson:"hades"`
}

// HADES hold the test-stand specific sub-assembly records attached by the
// merge. Each sub-assembly carries its dimensions and an offset along the
// cryostat longitudinal axis, in mm from the cryostat reference point.
type HADES struct {
	Wrap     Wrap          `yaml:"wrap" json:"wrap" bson:"wrap"`
	Holder   Holder        `yaml:"holder" json:"holder" bson:"holder"`
	Detector DetectorShape `yaml:"detector" json:"detector" bson:"detector"`
	Source   SourceMount   `yaml:"source" json:"source" bson:"source"`
}

// Cylinder is a height/radius pair, in mm.
type Cylinder struct {
	HeightInMM float64 `yaml:"height_in_mm" json:"heightInMM" bson:"heightInMM"`
	RadiusInMM float64 `yaml:"radius_in_mm" json:"radiusInMM" bson:"radiusInMM"`
}

// Wrap describe the mylar wrap around the crystal.
type Wrap struct {
	Geometry WrapGeometry `yaml:"geometry" json:"geometry" bson:"geometry"`
	Position float64      `yaml:"position" json:"position" bson:"position"`
}

// WrapGeometry hold the wrap shell dimensions.
type WrapGeometry struct {
	Outer Cylinder `yaml:"outer" json:"outer" bson:"outer"`
	Inner Cylinder `yaml:"inner" json:"inner" bson:"inner"`
}

// Holder describe the crystal support structure.
type Holder struct {
	Geometry HolderGeometry `yaml:"geometry" json:"geometry" bson:"geometry"`
	Position float64        `yaml:"position" json:"position" bson:"position"`
}

// HolderGeometry hold the holder dimensions. BottomCyl and the bottom ring
// only exist for icpc holders.
type HolderGeometry struct {
	Cylinder  CylinderShell `yaml:"cylinder" json:"cylinder" bson:"cylinder"`
	BottomCyl CylinderShell `yaml:"bottom_cyl" json:"bottomCyl" bson:"bottomCyl"`
	Rings     Rings         `yaml:"rings" json:"rings" bson:"rings"`
	Edge      Edge          `yaml:"edge" json:"edge" bson:"edge"`
}

// CylinderShell is an inner/outer cylinder pair.
type CylinderShell struct {
	Inner Cylinder `yaml:"inner" json:"inner" bson:"inner"`
	Outer Cylinder `yaml:"outer" json:"outer" bson:"outer"`
}

// Rings describe the holder support rings.
type Rings struct {
	PositionTopRingInMM    float64 `yaml:"position_top_ring_in_mm" json:"positionTopRingInMM" bson:"positionTopRingInMM"`
	PositionBottomRingInMM float64 `yaml:"position_bottom_ring_in_mm" json:"positionBottomRingInMM" bson:"positionBottomRingInMM"`
	RadiusInMM             float64 `yaml:"radius_in_mm" json:"radiusInMM" bson:"radiusInMM"`
	HeightInMM             float64 `yaml:"height_in_mm" json:"heightInMM" bson:"heightInMM"`
}

// Edge is the holder edge extension.
type Edge struct {
	HeightInMM float64 `yaml:"height_in_mm" json:"heightInMM" bson:"heightInMM"`
}

// DetectorShape describe the crystal outline handed to the shape provider.
type DetectorShape struct {
	Geometry CrystalGeometry `yaml:"geometry" json:"geometry" bson:"geometry"`
	Position float64         `yaml:"position" json:"position" bson:"position"`
}

// CrystalGeometry is the crystal envelope. The bore only exists for icpc
// crystals.
type CrystalGeometry struct {
	RadiusInMM     float64 `yaml:"radius_in_mm" json:"radiusInMM" bson:"radiusInMM"`
	HeightInMM     float64 `yaml:"height_in_mm" json:"heightInMM" bson:"heightInMM"`
	BoreRadiusInMM float64 `yaml:"bore_radius_in_mm" json:"boreRadiusInMM" bson:"boreRadiusInMM"`
	BoreDepthInMM  float64 `yaml:"bore_depth_in_mm" json:"boreDepthInMM" bson:"boreDepthInMM"`
}

// SourceMount is the calibration source seat above the cryostat.
type SourceMount struct {
	Position float64 `yaml:"position" json:"position" bson:"position"`
}
