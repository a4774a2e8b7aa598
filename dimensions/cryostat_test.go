package dimensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
)

func TestCryostatFor(t *testing.T) {
	type testCase struct {
		Type  metadata.DetectorType
		Order int
		Slice string

		Expected Cryostat
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := CryostatFor(tc.Type, tc.Order, tc.Slice)

		require.NoError(t, err)
		assert.Equal(t, tc.Expected, actual)
	}

	common := Cryostat{
		Thickness:                1.5,
		PositionCavityFromTop:    1.5,
		PositionCavityFromBottom: 0.8,
		PositionFromBottom:       250.0,
	}

	t.Run("Bege", func(t *testing.T) {
		expected := common
		expected.Height = 122.2
		expected.Width = 101.6
		check(t, testCase{
			Type: metadata.DetectorTypeBeGe, Order: 2, Slice: "A",
			Expected: expected,
		})
	})

	t.Run("IcpcRegularOrder", func(t *testing.T) {
		expected := common
		expected.Height = 171.0
		expected.Width = 101.6
		check(t, testCase{
			Type: metadata.DetectorTypeICPC, Order: 5, Slice: "A",
			Expected: expected,
		})
	})

	t.Run("IcpcXLOrders", func(t *testing.T) {
		for _, order := range []int{3, 8, 10} {
			expected := common
			expected.Height = 171.0
			expected.Width = 114.3
			check(t, testCase{
				Type: metadata.DetectorTypeICPC, Order: order, Slice: "A",
				Expected: expected,
			})
		}
	})

	t.Run("IcpcOrder9SliceBOverride", func(t *testing.T) {
		expected := common
		expected.Height = 171.0
		expected.Width = 107.95
		check(t, testCase{
			Type: metadata.DetectorTypeICPC, Order: 9, Slice: "B",
			Expected: expected,
		})
	})

	t.Run("IcpcOrder9OtherSliceStaysXL", func(t *testing.T) {
		expected := common
		expected.Height = 171.0
		expected.Width = 114.3
		check(t, testCase{
			Type: metadata.DetectorTypeICPC, Order: 9, Slice: "A",
			Expected: expected,
		})
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := CryostatFor("foo", 0, "A")

		var lookupErr *errors.Lookup
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "foo", lookupErr.Key)
		assert.Equal(t, []string{"bege", "icpc"}, lookupErr.Available)
	})
}
