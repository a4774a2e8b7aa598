package dimensions

import (
	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

// Canonical source type names. Measurement parsing already rewrote the
// collimated americium variant, so these are the only names that reach the
// dimension tables.
const (
	SourceAmCollimated = "am_collimated"
	SourceAm           = "am"
	SourceBa           = "ba"
	SourceCo           = "co"
	SourceTh           = "th"
)

var sourceTypes = []string{SourceAmCollimated, SourceAm, SourceBa, SourceCo, SourceTh}

// Measurement positions.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
	PositionLat    = "lat"
)

var measurementPositions = []string{PositionTop, PositionBottom, PositionLat}

// SourceDims is the closed union of per-source-type dimension records. Each
// variant carries exactly the parameters its geometry template takes.
type SourceDims interface {
	// SourceType returns the canonical source type name.
	SourceType() string
}

// Thickness is a height/width pair, in mm.
type Thickness struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// CollimatedAmSource is the americium source inside the tungsten
// collimator (HS1 fixture).
type CollimatedAmSource struct {
	Active     Thickness `json:"active"`
	Capsule    Thickness `json:"capsule"`
	Collimator struct {
		Width      float64 `json:"width"`
		Depth      float64 `json:"depth"`
		Height     float64 `json:"height"`
		BeamWidth  float64 `json:"beamWidth"`
		BeamHeight float64 `json:"beamHeight"`
		Window     float64 `json:"window"`
	} `json:"collimator"`
}

// SourceType implements SourceDims.
func (CollimatedAmSource) SourceType() string { return SourceAmCollimated }

// AmSource is the bare americium source in its plexiglass capsule.
type AmSource struct {
	Active  Thickness `json:"active"`
	Capsule Box3      `json:"capsule"`
}

// SourceType implements SourceDims.
func (AmSource) SourceType() string { return SourceAm }

// FoilSource covers the foil-mounted sources (barium and cobalt): active
// deposit on a mylar foil inside an aluminum ring.
type FoilSource struct {
	Type   string    `json:"type"`
	Active Thickness `json:"active"`
	Foil   Thickness `json:"foil"`
	AlRing struct {
		Height   float64 `json:"height"`
		WidthMax float64 `json:"widthMax"`
		WidthMin float64 `json:"widthMin"`
	} `json:"alRing"`
}

// SourceType implements SourceDims.
func (s FoilSource) SourceType() string { return s.Type }

// ThSource is the thorium source: epoxy-embedded deposit in a steel capsule
// on a copper mount, with optional shielding plates.
type ThSource struct {
	Active  Thickness `json:"active"`
	Capsule Thickness `json:"capsule"`
	Epoxy   Thickness `json:"epoxy"`
	Copper  struct {
		Height       float64 `json:"height"`
		Width        float64 `json:"width"`
		CavityWidth  float64 `json:"cavityWidth"`
		BottomHeight float64 `json:"bottomHeight"`
		BottomWidth  float64 `json:"bottomWidth"`
	} `json:"copper"`
	OffsetHeight float64 `json:"offsetHeight"`
	Plates       struct {
		Height      float64 `json:"height"`
		Width       float64 `json:"width"`
		CavityWidth float64 `json:"cavityWidth"`
	} `json:"plates"`
}

// SourceType implements SourceDims.
func (ThSource) SourceType() string { return SourceTh }

// SourceFor returns the dimension record for a source type at a
// measurement position. Unknown keys are hard errors naming the legal set.
func SourceFor(sourceType, position string) (SourceDims, error) {
	if err := checkPosition(position); err != nil {
		return nil, err
	}
	switch sourceType {
	case SourceAmCollimated:
		s := CollimatedAmSource{
			Active:  Thickness{Height: 0.1, Width: 5.0},
			Capsule: Thickness{Height: 4.6, Width: 12.0},
		}
		s.Collimator.Width = 55.0
		s.Collimator.Depth = 55.0
		s.Collimator.Height = 25.6
		s.Collimator.BeamWidth = 2.0
		s.Collimator.BeamHeight = 20.0
		s.Collimator.Window = 0.2
		return s, nil
	case SourceAm:
		return AmSource{
			Active:  Thickness{Height: 0.1, Width: 5.0},
			Capsule: Box3{Width: 12.0, Depth: 12.0, Height: 4.6},
		}, nil
	case SourceBa, SourceCo:
		s := FoilSource{
			Type:   sourceType,
			Active: Thickness{Height: 0.1, Width: 5.0},
			Foil:   Thickness{Height: 0.5, Width: 26.0},
		}
		s.AlRing.Height = 3.0
		s.AlRing.WidthMax = 30.0
		s.AlRing.WidthMin = 26.0
		return s, nil
	case SourceTh:
		s := ThSource{
			Active:       Thickness{Height: 0.1, Width: 5.0},
			Capsule:      Thickness{Height: 5.0, Width: 12.0},
			Epoxy:        Thickness{Height: 2.0, Width: 10.0},
			OffsetHeight: 1.0,
		}
		s.Copper.Height = 16.0
		s.Copper.Width = 12.0
		s.Copper.CavityWidth = 10.5
		s.Copper.BottomHeight = 3.0
		s.Copper.BottomWidth = 8.0
		s.Plates.Height = 10.0
		s.Plates.Width = 51.0
		s.Plates.CavityWidth = 15.0
		return s, nil
	default:
		return nil, errors.NewLookup("source type", sourceType, sourceTypes...)
	}
}

func checkPosition(position string) error {
	for _, p := range measurementPositions {
		if position == p {
			return nil
		}
	}
	return errors.NewLookup("measurement position", position, measurementPositions...)
}
