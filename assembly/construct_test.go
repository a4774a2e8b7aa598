package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/crystal"
	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
	"github.com/vbiancacci/legend-pygeom-hades/runs"
)

func testOptions(t *testing.T) Options {
	t.Helper()

	store, err := metadata.NewPublicStore()
	require.NoError(t, err)
	hades, err := metadata.DefaultHADESTable()
	require.NoError(t, err)
	db, err := runs.SampleDB()
	require.NoError(t, err)

	return Options{
		Detector:        "B00000B",
		Measurement:     "am_HS1_top_dlt",
		LeadCastleTable: 1,
		Campaign:        "vendor",
		Store:           store,
		HADES:           hades,
		RunDB:           db,
		Shapes:          crystal.PolyconeProvider{},
	}
}

func placementZ(t *testing.T, reg *registry.Registry, name string) float64 {
	t.Helper()
	pv, ok := reg.Physical(name)
	require.True(t, ok, "placement %s", name)
	return pv.Position.Z
}

func TestConstructDefaultAssemblies(t *testing.T) {
	reg, err := Construct(testOptions(t))
	require.NoError(t, err)

	world := reg.World()
	require.NotNil(t, world)
	assert.Equal(t, "world_lv", world.Name)

	// the cavity sits position_cavity_from_top below the cryostat top
	assert.Equal(t, 1.5, placementZ(t, reg, "cavity_pv"))

	// bege sub-assemblies, offset against the cavity top
	assert.Equal(t, 4.0-1.5, placementZ(t, reg, "wrap_pv"))
	assert.Equal(t, 2.5-1.5, placementZ(t, reg, "holder_pv"))
	assert.Equal(t, 5.0-1.5, placementZ(t, reg, "B00000B_pv"))
	assert.Equal(t, 0.0, placementZ(t, reg, "cryostat_pv"))

	// lead castle relative to the cryostat bottom
	assert.Equal(t, 250.0+15.0/2, placementZ(t, reg, "bottom_plate_pv"))
	assert.Equal(t, 250.0-500.0/2, placementZ(t, reg, "lead_castle_pv"))

	_, ok := reg.Logical("castle_front_lv")
	assert.True(t, ok, "table 1 castle has a front bezel")
	_, ok = reg.Logical("castle_copper_plate_lv")
	assert.False(t, ok, "table 1 castle has no copper plate")

	// no source assembly without the unverified flag
	_, ok = reg.Physical("source_pv")
	assert.False(t, ok)
}

func TestConstructTable2Castle(t *testing.T) {
	opts := testOptions(t)
	opts.LeadCastleTable = 2

	reg, err := Construct(opts)
	require.NoError(t, err)

	assert.Equal(t, 250.0-400.0/2, placementZ(t, reg, "lead_castle_pv"))

	_, ok := reg.Logical("castle_copper_plate_lv")
	assert.True(t, ok)
	_, ok = reg.Logical("castle_front_lv")
	assert.False(t, ok)
}

func TestConstructUnknownTable(t *testing.T) {
	opts := testOptions(t)
	opts.LeadCastleTable = 3

	_, err := Construct(opts)

	var lookupErr *errors.Lookup
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "3", lookupErr.Key)
	assert.Equal(t, []string{"1", "2"}, lookupErr.Available)
}

func TestConstructUnknownAssembly(t *testing.T) {
	opts := testOptions(t)
	opts.Assemblies = []string{"hpge", "moon_base"}

	_, err := Construct(opts)

	var lookupErr *errors.Lookup
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "moon_base", lookupErr.Key)
	assert.Equal(t, []string{"hpge", "lead_castle", "source"}, lookupErr.Available)
}

func TestConstructSourceGate(t *testing.T) {
	t.Run("RefusedWithoutFlag", func(t *testing.T) {
		opts := testOptions(t)
		opts.Assemblies = []string{"source"}

		_, err := Construct(opts)

		var unverifiedErr *errors.Unverified
		require.ErrorAs(t, err, &unverifiedErr)
		assert.Equal(t, "source", unverifiedErr.Assembly)
	})

	t.Run("BuildsWithFlag", func(t *testing.T) {
		opts := testOptions(t)
		opts.Detector = "V99000A"
		opts.Assemblies = []string{"source"}
		opts.AllowUnverified = true
		opts.Run = runs.Request{Run: "1"}

		reg, err := Construct(opts)
		require.NoError(t, err)

		pv, ok := reg.Physical("source_pv")
		require.True(t, ok)
		// in-plane offset from the resolved run, z from the metadata seat
		assert.Equal(t, 20.0, pv.Position.X)
		assert.Equal(t, 0.0, pv.Position.Y)
		assert.Equal(t, 200.0, pv.Position.Z)

		// plexiglass holder hangs below the source seat
		assert.Equal(t, -(200.0 + 3.0/2), placementZ(t, reg, "source_holder_pv"))

		_, ok = reg.Logical("th_plate_lv")
		assert.False(t, ok, "no thorium plates for an am source")
	})

	t.Run("ThoriumAddsPlates", func(t *testing.T) {
		opts := testOptions(t)
		opts.Detector = "V99000A"
		opts.Measurement = "th_HS2_lat_def"
		opts.Assemblies = []string{"source"}
		opts.AllowUnverified = true
		opts.Run = runs.Request{Run: "1"}

		reg, err := Construct(opts)
		require.NoError(t, err)

		_, ok := reg.Logical("th_plate_lv")
		assert.True(t, ok)
		// the lateral fixture has no top plate
		assert.Equal(t, -200.0, placementZ(t, reg, "source_holder_pv"))
	})
}

func TestConstructWithoutRunDBPlacesSourceOnAxis(t *testing.T) {
	opts := testOptions(t)
	opts.Detector = "V99000A"
	opts.Assemblies = []string{"source"}
	opts.AllowUnverified = true
	opts.RunDB = nil

	reg, err := Construct(opts)
	require.NoError(t, err)

	pv, ok := reg.Physical("source_pv")
	require.True(t, ok)
	assert.Equal(t, 0.0, pv.Position.X)
	assert.Equal(t, 0.0, pv.Position.Y)
	assert.Equal(t, 200.0, pv.Position.Z)
}
