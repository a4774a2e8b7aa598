package dimensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

func TestSourceFor(t *testing.T) {
	t.Run("CollimatedAm", func(t *testing.T) {
		dims, err := SourceFor(SourceAmCollimated, PositionTop)

		require.NoError(t, err)
		s, ok := dims.(CollimatedAmSource)
		require.True(t, ok)
		assert.Equal(t, SourceAmCollimated, s.SourceType())
		assert.Equal(t, 25.6, s.Collimator.Height)
		assert.Equal(t, 0.2, s.Collimator.Window)
	})

	t.Run("FoilSources", func(t *testing.T) {
		for _, sourceType := range []string{SourceBa, SourceCo} {
			dims, err := SourceFor(sourceType, PositionTop)

			require.NoError(t, err)
			s, ok := dims.(FoilSource)
			require.True(t, ok)
			assert.Equal(t, sourceType, s.SourceType())
			assert.Equal(t, 26.0, s.Foil.Width)
			assert.Equal(t, 30.0, s.AlRing.WidthMax)
		}
	})

	t.Run("Thorium", func(t *testing.T) {
		dims, err := SourceFor(SourceTh, PositionLat)

		require.NoError(t, err)
		s, ok := dims.(ThSource)
		require.True(t, ok)
		assert.Equal(t, 16.0, s.Copper.Height)
		assert.Equal(t, 10.5, s.Copper.CavityWidth)
		assert.Equal(t, 51.0, s.Plates.Width)
	})

	t.Run("UnknownSourceType", func(t *testing.T) {
		_, err := SourceFor("cs", PositionTop)

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "cs", lookupErr.Key)
		assert.Contains(t, lookupErr.Available, SourceAmCollimated)
	})

	t.Run("UnknownPosition", func(t *testing.T) {
		_, err := SourceFor(SourceBa, "side")

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "side", lookupErr.Key)
		assert.Equal(t, []string{PositionTop, PositionBottom, PositionLat}, lookupErr.Available)
	})
}

func TestSourceHolderFor(t *testing.T) {
	t.Run("ThoriumLateralFixture", func(t *testing.T) {
		holder, err := SourceHolderFor(SourceTh, PositionLat)

		require.NoError(t, err)
		th, ok := holder.(ThLateralSourceHolder)
		require.True(t, ok)
		assert.Equal(t, 60.8, th.Height)
		assert.Equal(t, 0.0, holder.TopPlateHeight())
	})

	t.Run("ThoriumTopUsesStandardHolder", func(t *testing.T) {
		holder, err := SourceHolderFor(SourceTh, PositionTop)

		require.NoError(t, err)
		_, ok := holder.(StandardSourceHolder)
		require.True(t, ok)
		assert.Equal(t, 3.0, holder.TopPlateHeight())
	})

	t.Run("AmHolderHasPlateDepth", func(t *testing.T) {
		holder, err := SourceHolderFor(SourceAm, PositionTop)

		require.NoError(t, err)
		am, ok := holder.(AmSourceHolder)
		require.True(t, ok)
		assert.Equal(t, 30.0, am.TopPlateDepth)
		assert.Equal(t, 3.0, holder.TopPlateHeight())
	})

	t.Run("UnknownSourceType", func(t *testing.T) {
		_, err := SourceHolderFor("cs", PositionTop)

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "cs", lookupErr.Key)
	})
}
