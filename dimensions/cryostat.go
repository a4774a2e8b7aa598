// Package dimensions hold the canonical dimension tables of the HADES
// test-stand sub-assemblies. Every accessor computes and returns a fresh
// value per call; there is no package-level mutable state, so repeated or
// concurrent construction passes never leak dimensions into each other.
package dimensions

import (
	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
)

// Cryostat describe the vacuum vessel housing the crystal. All mm.
type Cryostat struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`

	PositionCavityFromTop    float64 `json:"positionCavityFromTop"`
	PositionCavityFromBottom float64 `json:"positionCavityFromBottom"`
	PositionFromBottom       float64 `json:"positionFromBottom"`
}

// Production orders shipped in the wider "XL" cryostat shell.
var xlOrders = map[int]bool{3: true, 8: true, 9: true, 10: true}

// CryostatFor resolves the cryostat dimensions for a detector type and
// production batch. Order 9 slice B has a unique shell width overriding the
// XL-order rule.
func CryostatFor(
	detType metadata.DetectorType, order int, slice string,
) (Cryostat, error) {
	c := Cryostat{
		Thickness:                1.5,
		PositionCavityFromTop:    1.5,
		PositionCavityFromBottom: 0.8,
		PositionFromBottom:       250.0,
	}

	switch detType {
	case metadata.DetectorTypeBeGe:
		c.Height = 122.2
		c.Width = 101.6

	case metadata.DetectorTypeICPC:
		c.Height = 171.0
		if xlOrders[order] {
			c.Width = 114.3
		} else {
			c.Width = 101.6
		}
		if order == 9 && slice == "B" {
			c.Width = 107.95
		}

	default:
		return Cryostat{}, errors.NewLookup(
			"cryostat for detector type", string(detType),
			string(metadata.DetectorTypeBeGe), string(metadata.DetectorTypeICPC),
		)
	}
	return c, nil
}
