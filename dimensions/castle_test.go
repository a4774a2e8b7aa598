package dimensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

func TestCastleFor(t *testing.T) {
	t.Run("Table1", func(t *testing.T) {
		castle, err := CastleFor(1)

		require.NoError(t, err)
		assert.Equal(t, 1, castle.Table())
		assert.Equal(t, Box3{Width: 480, Depth: 450, Height: 500}, castle.Base())

		c1, ok := castle.(LeadCastle1)
		require.True(t, ok)
		assert.Equal(t, Box3{Width: 160, Depth: 100, Height: 400}, c1.Front)
		assert.Equal(t, Box3{Width: 120, Depth: 100, Height: 400}, c1.Cavity)
	})

	t.Run("Table2", func(t *testing.T) {
		castle, err := CastleFor(2)

		require.NoError(t, err)
		assert.Equal(t, 2, castle.Table())
		assert.Equal(t, Box3{Width: 350, Depth: 350, Height: 400}, castle.Base())

		c2, ok := castle.(LeadCastle2)
		require.True(t, ok)
		assert.Equal(t, Box3{Width: 350, Depth: 350, Height: 10}, c2.CopperPlate)
	})

	t.Run("UnknownTable", func(t *testing.T) {
		_, err := CastleFor(3)

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "3", lookupErr.Key)
		assert.Equal(t, []string{"1", "2"}, lookupErr.Available)
	})
}

func TestBottomPlateDims(t *testing.T) {
	plate := BottomPlateDims()

	assert.Equal(t, 750.0, plate.Width)
	assert.Equal(t, 750.0, plate.Depth)
	assert.Equal(t, 15.0, plate.Height)
	assert.Equal(t, Box3{Width: 120, Depth: 940, Height: 20}, plate.Cavity)
}
