package assembly

import (
	log "github.com/sirupsen/logrus"

	"github.com/vbiancacci/legend-pygeom-hades/crystal"
	"github.com/vbiancacci/legend-pygeom-hades/dimensions"
	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/geometry"
	"github.com/vbiancacci/legend-pygeom-hades/measurement"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
	"github.com/vbiancacci/legend-pygeom-hades/runs"
)

// Assembly selection names accepted by Construct.
const (
	AssemblyHPGe       = "hpge"
	AssemblyLeadCastle = "lead_castle"
	AssemblySource     = "source"
)

var assemblyNames = []string{AssemblyHPGe, AssemblyLeadCastle, AssemblySource}

// worldSideInMM is the edge length of the cubic air world volume.
const worldSideInMM = 10000.0

// Options select what Construct builds and where it reads from.
type Options struct {
	// Detector is the detector name looked up in the metadata store.
	Detector string
	// Measurement is the raw measurement identifier,
	// eg "am_HS1_top_dlt".
	Measurement string
	// Assemblies selects which sub-assemblies to build. Empty means
	// hpge plus lead_castle.
	Assemblies []string
	// LeadCastleTable is the measurement table, 1 or 2.
	LeadCastleTable int
	// AllowUnverified unlocks the source assembly branch.
	AllowUnverified bool
	// Campaign names the measurement campaign in the run database.
	Campaign string
	// Run selects the source run; only consulted when RunDB is set and
	// the source assembly is requested.
	Run runs.Request

	Store  metadata.Store
	HADES  metadata.HADESTable
	RunDB  *runs.DB
	Shapes crystal.ShapeProvider
}

// assemblies returns the normalized selection set.
func (o Options) assemblies() (map[string]bool, error) {
	names := o.Assemblies
	if len(names) == 0 {
		names = []string{AssemblyHPGe, AssemblyLeadCastle}
	}
	selected := map[string]bool{}
	for _, name := range names {
		switch name {
		case AssemblyHPGe, AssemblyLeadCastle, AssemblySource:
			selected[name] = true
		default:
			return nil, errors.NewLookup("assembly", name, assemblyNames...)
		}
	}
	return selected, nil
}

// Construct composes the full test-stand geometry into a fresh registry.
// All failures are fatal and no partial registry is ever returned.
func Construct(opts Options) (*registry.Registry, error) {
	selected, err := opts.assemblies()
	if err != nil {
		return nil, err
	}
	if selected[AssemblySource] && !opts.AllowUnverified {
		return nil, &errors.Unverified{Assembly: AssemblySource}
	}

	det, err := metadata.Merge(opts.Store, opts.Detector, opts.HADES)
	if err != nil {
		return nil, err
	}
	cryo, err := dimensions.CryostatFor(
		det.Type, det.Production.Order, det.Production.Slice,
	)
	if err != nil {
		return nil, err
	}
	spec, err := measurement.Parse(opts.Measurement)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"detector":    det.Name,
		"type":        det.Type,
		"measurement": opts.Measurement,
	}).Info("constructing geometry")

	reg := registry.New()
	world := &registry.LogicalVolume{
		Name: "world_lv",
		Solid: registry.Solid{
			Name: "world",
			Geometry: registry.Box{
				Size: geometry.Vec3D{X: worldSideInMM, Y: worldSideInMM, Z: worldSideInMM},
			},
		},
		Material: registry.Material{Name: "G4_AIR"},
	}
	if err := reg.SetWorld(world); err != nil {
		return nil, err
	}

	cavity := CreateVacuumCavity(cryo)
	_, err = reg.Place(
		cavity, "cavity_pv",
		geometry.Point{Z: cryo.PositionCavityFromTop}, world,
	)
	if err != nil {
		return nil, err
	}

	if selected[AssemblyHPGe] {
		if err := constructHPGe(reg, world, cavity, det, cryo, opts.Shapes); err != nil {
			return nil, err
		}
	}
	if selected[AssemblyLeadCastle] {
		if err := constructLeadCastle(reg, world, cryo, opts.LeadCastleTable); err != nil {
			return nil, err
		}
	}
	if selected[AssemblySource] {
		if err := constructSource(reg, world, det, spec, opts); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// constructHPGe builds the detector stack: wrap, holder and crystal inside
// the cavity, the cryostat shell in the world. The sub-assembly positions
// are measured from the cryostat top, the cavity already sits
// position_cavity_from_top below it.
func constructHPGe(
	reg *registry.Registry, world, cavity *registry.LogicalVolume,
	det metadata.DetectorMetadata, cryo dimensions.Cryostat,
	shapes crystal.ShapeProvider,
) error {
	wrap, err := CreateWrap(det.HADES.Wrap)
	if err != nil {
		return err
	}
	_, err = reg.Place(
		wrap, "wrap_pv",
		geometry.Point{Z: det.HADES.Wrap.Position - cryo.PositionCavityFromTop}, cavity,
	)
	if err != nil {
		return err
	}

	holder, err := CreateHolder(det.HADES.Holder, det.Type)
	if err != nil {
		return err
	}
	_, err = reg.Place(
		holder, "holder_pv",
		geometry.Point{Z: det.HADES.Holder.Position - cryo.PositionCavityFromTop}, cavity,
	)
	if err != nil {
		return err
	}

	crystalLV, err := CreateDetector(det, shapes)
	if err != nil {
		return err
	}
	_, err = reg.Place(
		crystalLV, det.Name+"_pv",
		geometry.Point{Z: det.HADES.Detector.Position - cryo.PositionCavityFromTop}, cavity,
	)
	if err != nil {
		return err
	}

	cryostat, err := CreateCryostat(cryo)
	if err != nil {
		return err
	}
	_, err = reg.Place(cryostat, "cryostat_pv", geometry.Point{}, world)
	return err
}

// constructLeadCastle builds the bottom plate and the castle, both in the
// world, positioned relative to the cryostat bottom.
func constructLeadCastle(
	reg *registry.Registry, world *registry.LogicalVolume,
	cryo dimensions.Cryostat, table int,
) error {
	castleDims, err := dimensions.CastleFor(table)
	if err != nil {
		return err
	}

	plateDims := dimensions.BottomPlateDims()
	plate, err := CreateBottomPlate(plateDims)
	if err != nil {
		return err
	}
	_, err = reg.Place(
		plate, "bottom_plate_pv",
		geometry.Point{Z: cryo.PositionFromBottom + plateDims.Height/2}, world,
	)
	if err != nil {
		return err
	}

	castle, err := CreateLeadCastle(castleDims)
	if err != nil {
		return err
	}
	_, err = reg.Place(
		castle, "lead_castle_pv",
		geometry.Point{Z: cryo.PositionFromBottom - castleDims.Base().Height/2}, world,
	)
	return err
}

// constructSource builds the source assembly: the source itself, the
// thorium shielding plates when applicable, and the mount fixture. The
// in-plane source offset comes from the run database when one is
// configured; without one the source sits on the cryostat axis.
func constructSource(
	reg *registry.Registry, world *registry.LogicalVolume,
	det metadata.DetectorMetadata, spec measurement.Spec, opts Options,
) error {
	sourceDims, err := dimensions.SourceFor(spec.Source, spec.Position)
	if err != nil {
		return err
	}
	holderDims, err := dimensions.SourceHolderFor(spec.Source, spec.Position)
	if err != nil {
		return err
	}

	sourcePos := geometry.Point{Z: det.HADES.Source.Position}
	if opts.RunDB != nil {
		res, err := runs.Resolve(opts.RunDB, det.Name, opts.Campaign, spec, opts.Run)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"run":   res.RunID,
			"short": res.ShortID,
			"x":     res.Define.X,
			"y":     res.Define.Y,
		}).Info("resolved source run")
		sourcePos.X = res.Define.X
		sourcePos.Y = res.Define.Y
	}

	source, err := CreateSource(sourceDims)
	if err != nil {
		return err
	}
	if _, err := reg.Place(source, "source_pv", sourcePos, world); err != nil {
		return err
	}

	if spec.Source == dimensions.SourceTh {
		th := sourceDims.(dimensions.ThSource)
		plates, err := CreateThPlate(th)
		if err != nil {
			return err
		}
		_, err = reg.Place(plates, "source_plates_pv", sourcePos, world)
		if err != nil {
			return err
		}
	}

	holder, err := CreateSourceHolder(holderDims, det.HADES.Source.Position)
	if err != nil {
		return err
	}
	holderPos := geometry.Point{
		Z: -(det.HADES.Source.Position + holderDims.TopPlateHeight()/2),
	}
	_, err = reg.Place(holder, "source_holder_pv", holderPos, world)
	return err
}
