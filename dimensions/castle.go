package dimensions

import (
	"strconv"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

// Box3 is a width/depth/height triple, in mm.
type Box3 struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// LeadCastle is the passive shielding enclosure. The two measurement
// tables have structurally different castles, so this is a closed union:
// LeadCastle1 has a front bezel with its own cavity, LeadCastle2 has a
// copper plate instead.
type LeadCastle interface {
	// Table returns the measurement table number, 1 or 2.
	Table() int
	// Base returns the castle base block, common to both variants and
	// used by the placement formula.
	Base() Box3
}

// LeadCastle1 is the castle on measurement table 1.
type LeadCastle1 struct {
	BaseDims    Box3 `json:"base"`
	InnerCavity Box3 `json:"innerCavity"`
	Cavity      Box3 `json:"cavity"`
	Top         Box3 `json:"top"`
	Front       Box3 `json:"front"`
}

// Table implements LeadCastle.
func (LeadCastle1) Table() int { return 1 }

// Base implements LeadCastle.
func (c LeadCastle1) Base() Box3 { return c.BaseDims }

// LeadCastle2 is the castle on measurement table 2.
type LeadCastle2 struct {
	BaseDims    Box3 `json:"base"`
	InnerCavity Box3 `json:"innerCavity"`
	Top         Box3 `json:"top"`
	CopperPlate Box3 `json:"copperPlate"`
}

// Table implements LeadCastle.
func (LeadCastle2) Table() int { return 2 }

// Base implements LeadCastle.
func (c LeadCastle2) Base() Box3 { return c.BaseDims }

// CastleFor returns the lead castle dimensions for a measurement table.
func CastleFor(table int) (LeadCastle, error) {
	switch table {
	case 1:
		return LeadCastle1{
			BaseDims:    Box3{Width: 480, Depth: 450, Height: 500},
			InnerCavity: Box3{Width: 300, Depth: 250, Height: 500},
			Cavity:      Box3{Width: 120, Depth: 100, Height: 400},
			Top:         Box3{Width: 300, Depth: 300, Height: 90},
			Front:       Box3{Width: 160, Depth: 100, Height: 400},
		}, nil
	case 2:
		return LeadCastle2{
			BaseDims:    Box3{Width: 350, Depth: 350, Height: 400},
			InnerCavity: Box3{Width: 250, Depth: 250, Height: 400},
			Top:         Box3{Width: 200, Depth: 200, Height: 50},
			CopperPlate: Box3{Width: 350, Depth: 350, Height: 10},
		}, nil
	default:
		return nil, errors.NewLookup("lead castle table", strconv.Itoa(table), "1", "2")
	}
}

// BottomPlate is the plate below the cryostat.
type BottomPlate struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	Cavity Box3    `json:"cavity"`
}

// BottomPlateDims returns the bottom plate dimensions.
func BottomPlateDims() BottomPlate {
	return BottomPlate{
		Width:  750,
		Depth:  750,
		Height: 15,
		// cavity depth spans both table sides, 475 mm each
		Cavity: Box3{Width: 120, Depth: 940, Height: 20},
	}
}
