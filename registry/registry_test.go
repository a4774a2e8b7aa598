package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/geometry"
)

func airBox(name string) *LogicalVolume {
	return &LogicalVolume{
		Name: name + "_lv",
		Solid: Solid{
			Name:     name,
			Geometry: Box{Size: geometry.Vec3D{X: 1, Y: 1, Z: 1}},
		},
		Material: Material{Name: "G4_AIR"},
	}
}

func TestSetWorld(t *testing.T) {
	t.Run("ExactlyOneWorld", func(t *testing.T) {
		reg := New()

		require.NoError(t, reg.SetWorld(airBox("world")))
		assert.Error(t, reg.SetWorld(airBox("other")))
		assert.Equal(t, "world_lv", reg.World().Name)
	})

	t.Run("AdoptsSubtree", func(t *testing.T) {
		reg := New()
		world := airBox("world")
		child := airBox("child")
		_, err := NewPhysicalVolume("child_pv", geometry.Point{}, child, world)
		require.NoError(t, err)

		require.NoError(t, reg.SetWorld(world))

		_, ok := reg.Logical("child_lv")
		assert.True(t, ok)
		_, ok = reg.Physical("child_pv")
		assert.True(t, ok)
	})
}

func TestPlace(t *testing.T) {
	newWorldRegistry := func(t *testing.T) (*Registry, *LogicalVolume) {
		t.Helper()
		reg := New()
		world := airBox("world")
		require.NoError(t, reg.SetWorld(world))
		return reg, world
	}

	t.Run("RegistersChildSubtree", func(t *testing.T) {
		reg, world := newWorldRegistry(t)
		outer := airBox("outer")
		inner := airBox("inner")
		_, err := NewPhysicalVolume("inner_pv", geometry.Point{Z: 1}, inner, outer)
		require.NoError(t, err)

		pv, err := reg.Place(outer, "outer_pv", geometry.Point{Z: 2}, world)

		require.NoError(t, err)
		assert.Equal(t, world, pv.Parent())
		assert.Equal(t,
			[]string{"inner_lv", "outer_lv", "world_lv"}, reg.LogicalNames())
		assert.Equal(t, []string{"inner_pv", "outer_pv"}, reg.PhysicalNames())
	})

	t.Run("ParentMustBeRegisteredFirst", func(t *testing.T) {
		reg, _ := newWorldRegistry(t)
		orphanParent := airBox("orphan")

		_, err := reg.Place(airBox("child"), "child_pv", geometry.Point{}, orphanParent)

		assert.Error(t, err)
	})

	t.Run("VolumeHasExactlyOneParent", func(t *testing.T) {
		reg, world := newWorldRegistry(t)
		child := airBox("child")
		_, err := reg.Place(child, "first_pv", geometry.Point{}, world)
		require.NoError(t, err)

		_, err = reg.Place(child, "second_pv", geometry.Point{}, world)

		assert.Error(t, err)
	})

	t.Run("PlacementNamesAreUnique", func(t *testing.T) {
		reg, world := newWorldRegistry(t)
		_, err := reg.Place(airBox("a"), "dup_pv", geometry.Point{}, world)
		require.NoError(t, err)

		_, err = reg.Place(airBox("b"), "dup_pv", geometry.Point{}, world)

		assert.Error(t, err)
	})

	t.Run("LogicalNamesAreUnique", func(t *testing.T) {
		reg, world := newWorldRegistry(t)
		_, err := reg.Place(airBox("same"), "first_pv", geometry.Point{}, world)
		require.NoError(t, err)

		_, err = reg.Place(airBox("same"), "second_pv", geometry.Point{}, world)

		assert.Error(t, err)
	})
}
