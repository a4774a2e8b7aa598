package gdml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

// Write serializes a composed registry to GDML. Volumes are emitted
// children before parents, as Geant4 readers expect.
func Write(reg *registry.Registry, w io.Writer) error {
	world := reg.World()
	if world == nil {
		return fmt.Errorf("cannot serialize a registry without a world volume")
	}

	doc := xmlDocument{
		Setup: &xmlSetup{Name: "Default", Version: "1.0", World: xmlRef{Ref: world.Name}},
	}

	seenSolids := map[string]bool{}
	var visit func(lv *registry.LogicalVolume)
	visit = func(lv *registry.LogicalVolume) {
		for _, pv := range lv.Daughters() {
			visit(pv.Child)
		}
		if !seenSolids[lv.Solid.Name] {
			seenSolids[lv.Solid.Name] = true
			appendSolid(&doc.Solids, lv.Solid)
		}
		vol := xmlVolume{
			Name:        lv.Name,
			MaterialRef: xmlRef{Ref: lv.Material.Name},
			SolidRef:    xmlRef{Ref: lv.Solid.Name},
		}
		for _, pv := range lv.Daughters() {
			vol.PhysVols = append(vol.PhysVols, xmlPhysVol{
				Name:      pv.Name,
				VolumeRef: xmlRef{Ref: pv.Child.Name},
				Position: xmlPosition{
					X: pv.Position.X, Y: pv.Position.Y, Z: pv.Position.Z, Unit: "mm",
				},
			})
		}
		doc.Structure.Volumes = append(doc.Structure.Volumes, vol)
	}
	visit(world)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gdml: %w", err)
	}
	return enc.Flush()
}

// WriteFile serializes a registry to a GDML file.
func WriteFile(reg *registry.Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(reg, f); err != nil {
		return err
	}
	return f.Close()
}

// Read deserializes a GDML document into a fresh registry.
func Read(r io.Reader) (*registry.Registry, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	world, err := parseVolume(string(b))
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	if err := reg.SetWorld(world); err != nil {
		return nil, err
	}
	return reg, nil
}

// ReadFile deserializes a GDML file into a fresh registry.
func ReadFile(path string) (*registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func appendSolid(solids *xmlSolids, s registry.Solid) {
	switch g := s.Geometry.(type) {
	case registry.Box:
		solids.Boxes = append(solids.Boxes, xmlBox{
			Name: s.Name, X: g.Size.X, Y: g.Size.Y, Z: g.Size.Z, LUnit: "mm",
		})
	case registry.Tube:
		solids.Tubes = append(solids.Tubes, xmlTube{
			Name: s.Name, RMin: g.InnerRadius, RMax: g.OuterRadius, Z: g.Height, LUnit: "mm",
		})
	case registry.GenericPolycone:
		pc := xmlPolycone{Name: s.Name, StartPhi: g.PhiStart, DeltaPhi: g.PhiTotal}
		for i := range g.R {
			pc.Points = append(pc.Points, xmlRZPoint{R: g.R[i], Z: g.Z[i]})
		}
		solids.Polycones = append(solids.Polycones, pc)
	case registry.Opaque:
		solids.Other = append(solids.Other, xmlOpaque{
			XMLName: xml.Name{Local: g.Kind}, Name: s.Name, Inner: g.Raw,
		})
	}
}
