package gdml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/geometry"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
)

func wrapReplacements() map[string]float64 {
	return map[string]float64{
		"wrap_outer_height_in_mm":  104.0,
		"wrap_outer_radius_in_mm":  42.0,
		"wrap_inner_radius_in_mm":  41.9,
		"wrap_top_thickness_in_mm": 0.1,
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Run("InstantiatesWrap", func(t *testing.T) {
		lv, err := LoadTemplate("wrap", wrapReplacements())

		require.NoError(t, err)
		assert.Equal(t, "wrap_lv", lv.Name)
		assert.Equal(t, "G4_MYLAR", lv.Material.Name)

		tube, ok := lv.Solid.Geometry.(registry.Tube)
		require.True(t, ok)
		assert.Equal(t, 41.9, tube.InnerRadius)
		assert.Equal(t, 42.0, tube.OuterRadius)
		assert.Equal(t, 104.0, tube.Height)

		require.Len(t, lv.Daughters(), 1)
		assert.Equal(t, "wrap_top_pv", lv.Daughters()[0].Name)
		assert.Equal(t, 0.1, lv.Daughters()[0].Position.Z)
	})

	t.Run("EveryBundledTemplateHasPlaceholders", func(t *testing.T) {
		for _, name := range TemplateNames() {
			b, err := Template(name)
			require.NoError(t, err)
			assert.True(t, placeholderRe.Match(b), "template %s", name)
		}
	})

	t.Run("UnknownTemplate", func(t *testing.T) {
		_, err := LoadTemplate("pyramid", nil)

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "pyramid", lookupErr.Key)
		assert.Contains(t, lookupErr.Available, "wrap")
	})

	t.Run("MissingReplacement", func(t *testing.T) {
		repl := wrapReplacements()
		delete(repl, "wrap_top_thickness_in_mm")

		_, err := LoadTemplate("wrap", repl)

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Contains(t, lookupErr.Key, "wrap_top_thickness_in_mm")
	})
}

func TestReadWithReplacementsShapeError(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?>
<gdml>
  <solids>
    <box name="a" x="1" y="1" z="1"/>
    <box name="b" x="2" y="2" z="2"/>
  </solids>
  <structure>
    <volume name="a_lv"><materialref ref="G4_AIR"/><solidref ref="a"/></volume>
    <volume name="b_lv"><materialref ref="G4_AIR"/><solidref ref="b"/></volume>
  </structure>
</gdml>`)

	_, err := ReadWithReplacements(doc, nil)

	var shapeErr *errors.Shape
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Volumes)
}

func TestWriteReadRoundTrip(t *testing.T) {
	reg := registry.New()
	world := &registry.LogicalVolume{
		Name: "world_lv",
		Solid: registry.Solid{
			Name:     "world",
			Geometry: registry.Box{Size: geometry.Vec3D{X: 100, Y: 100, Z: 100}},
		},
		Material: registry.Material{Name: "G4_AIR"},
	}
	require.NoError(t, reg.SetWorld(world))

	wrap, err := LoadTemplate("wrap", wrapReplacements())
	require.NoError(t, err)
	_, err = reg.Place(wrap, "wrap_pv", geometry.Point{Z: 3.5}, world)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(reg, &buf))

	back, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, reg.LogicalNames(), back.LogicalNames())
	assert.Equal(t, reg.PhysicalNames(), back.PhysicalNames())

	pv, ok := back.Physical("wrap_pv")
	require.True(t, ok)
	assert.Equal(t, geometry.Point{Z: 3.5}, pv.Position)
	assert.Equal(t, "wrap_lv", pv.Child.Name)

	backWorld := back.World()
	require.NotNil(t, backWorld)
	assert.Equal(t, "world_lv", backWorld.Name)
}

func TestWriteWithoutWorld(t *testing.T) {
	var buf bytes.Buffer
	err := Write(registry.New(), &buf)
	assert.Error(t, err)
}
