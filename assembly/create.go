// Package assembly build the HADES sub-assembly volumes and compose them
// into the final registry.
package assembly

import (
	"fmt"
	"math"

	"github.com/vbiancacci/legend-pygeom-hades/crystal"
	"github.com/vbiancacci/legend-pygeom-hades/dimensions"
	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/gdml"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

// CreateVacuumCavity builds the evacuated cryostat interior. The cavity is
// the one solid built directly rather than from a template.
func CreateVacuumCavity(cryo dimensions.Cryostat) *registry.LogicalVolume {
	radius := (cryo.Width - 2*cryo.Thickness) / 2
	height := cryo.Height - cryo.PositionCavityFromTop - cryo.PositionCavityFromBottom

	return &registry.LogicalVolume{
		Name: "cavity_lv",
		Solid: registry.Solid{
			Name: "vacuum_cavity",
			Geometry: registry.GenericPolycone{
				PhiTotal: 2 * math.Pi,
				R:        []float64{0, radius, radius, 0},
				Z:        []float64{0, 0, height, height},
			},
		},
		Material: registry.Material{Name: "G4_Galactic"},
	}
}

// CreateWrap builds the mylar wrap around the crystal.
func CreateWrap(wrap metadata.Wrap) (*registry.LogicalVolume, error) {
	g := wrap.Geometry
	return gdml.LoadTemplate("wrap", map[string]float64{
		"wrap_outer_height_in_mm":  g.Outer.HeightInMM,
		"wrap_outer_radius_in_mm":  g.Outer.RadiusInMM,
		"wrap_inner_radius_in_mm":  g.Inner.RadiusInMM,
		"wrap_top_thickness_in_mm": g.Outer.HeightInMM - g.Inner.HeightInMM,
	})
}

// CreateHolder builds the crystal support structure. The icpc and bege
// holders have structurally different parameter sets; coax and ppc
// detectors were never measured in HADES.
func CreateHolder(holder metadata.Holder, detType metadata.DetectorType) (*registry.LogicalVolume, error) {
	g := holder.Geometry

	switch detType {
	case metadata.DetectorTypeICPC:
		return gdml.LoadTemplate("holder_icpc", map[string]float64{
			"max_radius_in_mm":              g.Rings.RadiusInMM,
			"outer_height_in_mm":            g.Cylinder.Outer.HeightInMM,
			"inner_height_in_mm":            g.Cylinder.Inner.HeightInMM,
			"outer_radius_in_mm":            g.Cylinder.Outer.RadiusInMM,
			"inner_radius_in_mm":            g.Cylinder.Inner.RadiusInMM,
			"outer_bottom_cyl_radius_in_mm": g.BottomCyl.Outer.RadiusInMM,
			"inner_bottom_cyl_radius_in_mm": g.BottomCyl.Inner.RadiusInMM,
			"edge_height_in_mm":             g.Edge.HeightInMM,
			"pos_top_ring_in_mm":            g.Rings.PositionTopRingInMM,
			"pos_bottom_ring_in_mm":         g.Rings.PositionBottomRingInMM,
			"end_top_ring_in_mm":            g.Rings.PositionTopRingInMM + g.Rings.HeightInMM,
			"end_bottom_ring_in_mm":         g.Rings.PositionBottomRingInMM + g.Rings.HeightInMM,
			"end_bottom_cyl_outer_in_mm":    g.Cylinder.Outer.HeightInMM + g.BottomCyl.Outer.HeightInMM,
			"end_bottom_cyl_inner_in_mm":    g.Cylinder.Inner.HeightInMM + g.BottomCyl.Inner.HeightInMM,
		})

	case metadata.DetectorTypeBeGe:
		return gdml.LoadTemplate("holder_bege", map[string]float64{
			"max_radius_in_mm":        g.Rings.RadiusInMM,
			"outer_height_in_mm":      g.Cylinder.Outer.HeightInMM,
			"inner_height_in_mm":      g.Cylinder.Inner.HeightInMM,
			"outer_radius_in_mm":      g.Cylinder.Outer.RadiusInMM,
			"inner_radius_in_mm":      g.Cylinder.Inner.RadiusInMM,
			"position_top_ring_in_mm": g.Rings.PositionTopRingInMM,
			"end_top_ring_in_mm":      g.Rings.HeightInMM + g.Rings.PositionTopRingInMM,
		})

	default:
		return nil, errors.NewLookup(
			"holder for detector type", string(detType),
			string(metadata.DetectorTypeBeGe), string(metadata.DetectorTypeICPC),
		)
	}
}

// CreateBottomPlate builds the plate below the cryostat.
func CreateBottomPlate(plate dimensions.BottomPlate) (*registry.LogicalVolume, error) {
	return gdml.LoadTemplate("bottom_plate", map[string]float64{
		"bottom_plate_width":         plate.Width,
		"bottom_plate_depth":         plate.Depth,
		"bottom_plate_height":        plate.Height,
		"bottom_cavity_plate_width":  plate.Cavity.Width,
		"bottom_cavity_plate_depth":  plate.Cavity.Depth,
		"bottom_cavity_plate_height": plate.Cavity.Height,
	})
}

// CreateLeadCastle builds the shielding castle for either measurement
// table.
func CreateLeadCastle(castle dimensions.LeadCastle) (*registry.LogicalVolume, error) {
	switch c := castle.(type) {
	case dimensions.LeadCastle1:
		return gdml.LoadTemplate("lead_castle_table1", map[string]float64{
			"base_width_1":          c.BaseDims.Width,
			"base_depth_1":          c.BaseDims.Depth,
			"base_height_1":         c.BaseDims.Height,
			"inner_cavity_width_1":  c.InnerCavity.Width,
			"inner_cavity_depth_1":  c.InnerCavity.Depth,
			"inner_cavity_height_1": c.InnerCavity.Height,
			"cavity_width_1":        c.Cavity.Width,
			"cavity_depth_1":        c.Cavity.Depth,
			"cavity_height_1":       c.Cavity.Height,
			"top_width_1":           c.Top.Width,
			"top_depth_1":           c.Top.Depth,
			"top_height_1":          c.Top.Height,
			"front_width_1":         c.Front.Width,
			"front_depth_1":         c.Front.Depth,
			"front_height_1":        c.Front.Height,
		})

	case dimensions.LeadCastle2:
		return gdml.LoadTemplate("lead_castle_table2", map[string]float64{
			"base_width_2":          c.BaseDims.Width,
			"base_depth_2":          c.BaseDims.Depth,
			"base_height_2":         c.BaseDims.Height,
			"inner_cavity_width_2":  c.InnerCavity.Width,
			"inner_cavity_depth_2":  c.InnerCavity.Depth,
			"inner_cavity_height_2": c.InnerCavity.Height,
			"top_width_2":           c.Top.Width,
			"top_depth_2":           c.Top.Depth,
			"top_height_2":          c.Top.Height,
			"copper_plate_width":    c.CopperPlate.Width,
			"copper_plate_depth":    c.CopperPlate.Depth,
			"copper_plate_height":   c.CopperPlate.Height,
		})

	default:
		return nil, fmt.Errorf("lead castle variant %T not implemented", castle)
	}
}

// CreateSource builds the radioactive source assembly for one of the five
// source types.
func CreateSource(dims dimensions.SourceDims) (*registry.LogicalVolume, error) {
	switch s := dims.(type) {
	case dimensions.CollimatedAmSource:
		return gdml.LoadTemplate("source_am_collimated", map[string]float64{
			"source_height":          s.Active.Height,
			"source_width":           s.Active.Width,
			"source_capsule_height":  s.Capsule.Height,
			"source_capsule_width":   s.Capsule.Width,
			"window_source":          s.Collimator.Window,
			"collimator_height":      s.Collimator.Height,
			"collimator_depth":       s.Collimator.Depth,
			"collimator_width":       s.Collimator.Width,
			"collimator_beam_height": s.Collimator.BeamHeight,
			"collimator_beam_width":  s.Collimator.BeamWidth,
		})

	case dimensions.AmSource:
		return gdml.LoadTemplate("source_am", map[string]float64{
			"source_height":         s.Active.Height,
			"source_width":          s.Active.Width,
			"source_capsule_height": s.Capsule.Height,
			"source_capsule_width":  s.Capsule.Width,
			"source_capsule_depth":  s.Capsule.Depth,
		})

	case dimensions.FoilSource:
		return gdml.LoadTemplate("source_"+s.Type, map[string]float64{
			"source_height":           s.Active.Height,
			"source_width":            s.Active.Width,
			"source_foil_height":      s.Foil.Height,
			"source_Alring_height":    s.AlRing.Height,
			"source_Alring_width_min": s.AlRing.WidthMin,
			"source_Alring_width_max": s.AlRing.WidthMax,
		})

	case dimensions.ThSource:
		return gdml.LoadTemplate("source_th", map[string]float64{
			"source_height":                 s.Active.Height,
			"source_width":                  s.Active.Width,
			"source_capsule_height":         s.Capsule.Height,
			"source_capsule_width":          s.Capsule.Width,
			"source_epoxy_height":           s.Epoxy.Height,
			"source_epoxy_width":            s.Epoxy.Width,
			"CuSource_holder_height":        s.Copper.Height,
			"CuSource_holder_width":         s.Copper.Width,
			"CuSource_holder_cavity_width":  s.Copper.CavityWidth,
			"CuSource_holder_bottom_height": s.Copper.BottomHeight,
			"CuSource_holder_bottom_width":  s.Copper.BottomWidth,
			"source_offset_height":          s.OffsetHeight,
		})

	default:
		return nil, fmt.Errorf("source variant %T not implemented", dims)
	}
}

// CreateThPlate builds the shielding plates used with the thorium source.
func CreateThPlate(th dimensions.ThSource) (*registry.LogicalVolume, error) {
	return gdml.LoadTemplate("source_th_plates", map[string]float64{
		"source_plates_height":       th.Plates.Height,
		"source_plates_width":        th.Plates.Width,
		"source_plates_cavity_width": th.Plates.CavityWidth,
	})
}

// CreateSourceHolder builds the source mount fixture. sourceZ is the
// source seat position along the cryostat axis, substituted into the
// holder outlines that reach down to it.
func CreateSourceHolder(holder dimensions.SourceHolder, sourceZ float64) (*registry.LogicalVolume, error) {
	switch h := holder.(type) {
	case dimensions.ThLateralSourceHolder:
		return gdml.LoadTemplate("source_holder_th_lat", map[string]float64{
			"cavity_source_holder_height": h.CavityHeight,
			"cavity_source_holder_width":  h.CavityWidth,
			"source_holder_height":        h.Height,
			"source_holder_outer_width":   h.OuterWidth,
			"source_holder_inner_width":   h.InnerWidth,
		})

	case dimensions.AmSourceHolder:
		return gdml.LoadTemplate("source_holder_am", map[string]float64{
			"source_holder_top_height":         h.TopHeight,
			"position_source_fromcryostat_z":   sourceZ,
			"source_holder_top_plate_height":   h.TopPlate.Height,
			"source_holder_top_plate_width":    h.TopPlate.Width,
			"source_holder_top_plate_depth":    h.TopPlateDepth,
			"source_holder_topbottom_height":   h.TopBottomHeight,
			"source_holder_top_inner_width":    h.TopInnerWidth,
			"source_holder_top_inner_depth":    h.TopInnerDepth,
			"source_holder_inner_width":        h.InnerWidth,
			"source_holder_bottom_inner_width": h.BottomInnerWidth,
			"source_holder_outer_width":        h.OuterWidth,
		})

	case dimensions.StandardSourceHolder:
		return gdml.LoadTemplate("source_holder", map[string]float64{
			"source_holder_top_plate_height":   h.TopPlate.Height,
			"source_holder_top_height":         h.TopHeight,
			"source_holder_topbottom_height":   h.TopBottomHeight,
			"source_holder_top_plate_width":    h.TopPlate.Width,
			"source_holder_top_inner_width":    h.TopInnerWidth,
			"source_holder_inner_width":        h.InnerWidth,
			"source_holder_bottom_inner_width": h.BottomInnerWidth,
			"source_holder_outer_width":        h.OuterWidth,
			"position_source_fromcryostat_z":   sourceZ,
		})

	default:
		return nil, fmt.Errorf("source holder variant %T not implemented", holder)
	}
}

// CreateCryostat builds the aluminum vacuum vessel shell. The outline is a
// solid of revolution, so the builder hands the template radii, not
// widths.
func CreateCryostat(cryo dimensions.Cryostat) (*registry.LogicalVolume, error) {
	radius := cryo.Width / 2
	return gdml.LoadTemplate("cryostat", map[string]float64{
		"cryostat_height":                  cryo.Height,
		"cryostat_radius":                  radius,
		"cryostat_inner_radius":            radius - cryo.Thickness,
		"position_cryostat_cavity_fromTop": cryo.PositionCavityFromTop,
		"end_cryostat_cavity":              cryo.Height - cryo.PositionCavityFromBottom,
	})
}

// CreateDetector builds the crystal volume through the shape provider.
func CreateDetector(
	det metadata.DetectorMetadata, shapes crystal.ShapeProvider,
) (*registry.LogicalVolume, error) {
	solid, err := shapes.MakeCrystal(det)
	if err != nil {
		return nil, err
	}
	return &registry.LogicalVolume{
		Name:     det.Name + "_lv",
		Solid:    solid,
		Material: registry.Material{Name: "G4_Ge"},
	}, nil
}
