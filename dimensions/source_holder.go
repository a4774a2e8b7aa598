package dimensions

import (
	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

// SourceHolder is the closed union of source mount fixtures. The variant
// depends on both the source type and the measurement position: the
// thorium source measured laterally sits in its own fixture, americium has
// a rectangular top plate, everything else shares the plexiglass holder.
type SourceHolder interface {
	// TopPlateHeight returns the top plate thickness used by the holder
	// placement formula; zero for the lateral thorium fixture.
	TopPlateHeight() float64
}

// StandardSourceHolder is the plexiglass holder shared by the collimated
// americium, barium, cobalt and top-mounted thorium sources.
type StandardSourceHolder struct {
	TopPlate         Thickness `json:"topPlate"`
	TopHeight        float64   `json:"topHeight"`
	TopInnerWidth    float64   `json:"topInnerWidth"`
	TopBottomHeight  float64   `json:"topBottomHeight"`
	InnerWidth       float64   `json:"innerWidth"`
	BottomInnerWidth float64   `json:"bottomInnerWidth"`
	OuterWidth       float64   `json:"outerWidth"`
}

// TopPlateHeight implements SourceHolder.
func (h StandardSourceHolder) TopPlateHeight() float64 { return h.TopPlate.Height }

// AmSourceHolder is the americium holder with its rectangular top plate.
type AmSourceHolder struct {
	StandardSourceHolder

	TopPlateDepth float64 `json:"topPlateDepth"`
	TopInnerDepth float64 `json:"topInnerDepth"`
}

// ThLateralSourceHolder is the fixture for lateral thorium measurements.
type ThLateralSourceHolder struct {
	Height       float64 `json:"height"`
	InnerWidth   float64 `json:"innerWidth"`
	OuterWidth   float64 `json:"outerWidth"`
	CavityWidth  float64 `json:"cavityWidth"`
	CavityHeight float64 `json:"cavityHeight"`
}

// TopPlateHeight implements SourceHolder.
func (ThLateralSourceHolder) TopPlateHeight() float64 { return 0 }

// SourceHolderFor returns the holder fixture for a source type at a
// measurement position.
func SourceHolderFor(sourceType, position string) (SourceHolder, error) {
	if err := checkPosition(position); err != nil {
		return nil, err
	}
	standard := StandardSourceHolder{
		TopPlate:         Thickness{Height: 3.0, Width: 30.0},
		TopHeight:        10.0,
		TopInnerWidth:    20.0,
		TopBottomHeight:  6.1,
		InnerWidth:       87.0,
		BottomInnerWidth: 102.0,
		OuterWidth:       108.0,
	}

	switch sourceType {
	case SourceTh:
		if position == PositionLat {
			return ThLateralSourceHolder{
				Height:       60.8,
				InnerWidth:   87.0,
				OuterWidth:   108.0,
				CavityWidth:  18.0,
				CavityHeight: 21.5,
			}, nil
		}
		return standard, nil
	case SourceAm:
		return AmSourceHolder{
			StandardSourceHolder: standard,
			TopPlateDepth:        30.0,
			TopInnerDepth:        20.0,
		}, nil
	case SourceAmCollimated, SourceBa, SourceCo:
		return standard, nil
	default:
		return nil, errors.NewLookup("source holder for source type", sourceType, sourceTypes...)
	}
}
