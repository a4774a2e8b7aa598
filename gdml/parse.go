package gdml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/geometry"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

type xmlDocument struct {
	XMLName   xml.Name     `xml:"gdml"`
	Solids    xmlSolids    `xml:"solids"`
	Structure xmlStructure `xml:"structure"`
	Setup     *xmlSetup    `xml:"setup"`
}

type xmlSolids struct {
	Boxes     []xmlBox      `xml:"box"`
	Tubes     []xmlTube     `xml:"tube"`
	Polycones []xmlPolycone `xml:"genericPolycone"`
	Other     []xmlOpaque   `xml:",any"`
}

type xmlBox struct {
	Name  string  `xml:"name,attr"`
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Z     float64 `xml:"z,attr"`
	LUnit string  `xml:"lunit,attr,omitempty"`
}

type xmlTube struct {
	Name  string  `xml:"name,attr"`
	RMin  float64 `xml:"rmin,attr"`
	RMax  float64 `xml:"rmax,attr"`
	Z     float64 `xml:"z,attr"`
	LUnit string  `xml:"lunit,attr,omitempty"`
}

type xmlPolycone struct {
	Name     string       `xml:"name,attr"`
	StartPhi float64      `xml:"startphi,attr"`
	DeltaPhi float64      `xml:"deltaphi,attr"`
	Points   []xmlRZPoint `xml:"rzpoint"`
}

type xmlRZPoint struct {
	R float64 `xml:"r,attr"`
	Z float64 `xml:"z,attr"`
}

type xmlOpaque struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	Inner   string `xml:",innerxml"`
}

type xmlStructure struct {
	Volumes []xmlVolume `xml:"volume"`
}

type xmlVolume struct {
	Name        string       `xml:"name,attr"`
	MaterialRef xmlRef       `xml:"materialref"`
	SolidRef    xmlRef       `xml:"solidref"`
	PhysVols    []xmlPhysVol `xml:"physvol"`
}

type xmlRef struct {
	Ref string `xml:"ref,attr"`
}

type xmlPhysVol struct {
	Name      string      `xml:"name,attr"`
	VolumeRef xmlRef      `xml:"volumeref"`
	Position  xmlPosition `xml:"position"`
}

type xmlPosition struct {
	X    float64 `xml:"x,attr"`
	Y    float64 `xml:"y,attr"`
	Z    float64 `xml:"z,attr"`
	Unit string  `xml:"unit,attr,omitempty"`
}

// parseVolume decodes a GDML document and links its volume tree, returning
// the single root logical volume.
func parseVolume(doc string) (*registry.LogicalVolume, error) {
	roots, err := parseVolumes(doc)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, &errors.Shape{Volumes: len(roots)}
	}
	return roots[0], nil
}

// parseVolumes decodes a GDML document and returns all root volumes, ie
// volumes not placed inside any other volume.
func parseVolumes(doc string) ([]*registry.LogicalVolume, error) {
	var parsed xmlDocument
	if err := xml.NewDecoder(strings.NewReader(doc)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode gdml: %w", err)
	}

	solids, err := collectSolids(parsed.Solids)
	if err != nil {
		return nil, err
	}

	volumes := map[string]*registry.LogicalVolume{}
	for _, v := range parsed.Structure.Volumes {
		if _, ok := volumes[v.Name]; ok {
			return nil, fmt.Errorf("duplicate volume %q in gdml document", v.Name)
		}
		solid, ok := solids[v.SolidRef.Ref]
		if !ok {
			return nil, fmt.Errorf("volume %q references unknown solid %q", v.Name, v.SolidRef.Ref)
		}
		volumes[v.Name] = &registry.LogicalVolume{
			Name:     v.Name,
			Solid:    solid,
			Material: registry.Material{Name: v.MaterialRef.Ref},
		}
	}

	placed := map[string]bool{}
	for _, v := range parsed.Structure.Volumes {
		parent := volumes[v.Name]
		for _, pv := range v.PhysVols {
			child, ok := volumes[pv.VolumeRef.Ref]
			if !ok {
				return nil, fmt.Errorf(
					"placement %q references unknown volume %q", pv.Name, pv.VolumeRef.Ref,
				)
			}
			pos := geometry.Point{X: pv.Position.X, Y: pv.Position.Y, Z: pv.Position.Z}
			if _, err := registry.NewPhysicalVolume(pv.Name, pos, child, parent); err != nil {
				return nil, err
			}
			placed[pv.VolumeRef.Ref] = true
		}
	}

	var roots []*registry.LogicalVolume
	for _, v := range parsed.Structure.Volumes {
		if !placed[v.Name] {
			roots = append(roots, volumes[v.Name])
		}
	}
	// World ref wins when the document declares one.
	if parsed.Setup != nil && parsed.Setup.World.Ref != "" {
		world, ok := volumes[parsed.Setup.World.Ref]
		if !ok {
			return nil, fmt.Errorf("setup references unknown world volume %q", parsed.Setup.World.Ref)
		}
		return []*registry.LogicalVolume{world}, nil
	}
	return roots, nil
}

type xmlSetup struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
	World   xmlRef `xml:"world"`
}

func collectSolids(s xmlSolids) (map[string]registry.Solid, error) {
	solids := map[string]registry.Solid{}
	add := func(name string, g registry.SolidGeometry) error {
		if _, ok := solids[name]; ok {
			return fmt.Errorf("duplicate solid %q in gdml document", name)
		}
		solids[name] = registry.Solid{Name: name, Geometry: g}
		return nil
	}
	for _, b := range s.Boxes {
		if err := add(b.Name, registry.Box{
			Size: geometry.Vec3D{X: b.X, Y: b.Y, Z: b.Z},
		}); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Tubes {
		if err := add(t.Name, registry.Tube{
			InnerRadius: t.RMin, OuterRadius: t.RMax, Height: t.Z,
		}); err != nil {
			return nil, err
		}
	}
	for _, p := range s.Polycones {
		g := registry.GenericPolycone{PhiStart: p.StartPhi, PhiTotal: p.DeltaPhi}
		for _, pt := range p.Points {
			g.R = append(g.R, pt.R)
			g.Z = append(g.Z, pt.Z)
		}
		if err := add(p.Name, g); err != nil {
			return nil, err
		}
	}
	for _, o := range s.Other {
		if o.Name == "" {
			continue
		}
		if err := add(o.Name, registry.Opaque{Kind: o.XMLName.Local, Raw: o.Inner}); err != nil {
			return nil, err
		}
	}
	return solids, nil
}
