package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

func TestParse(t *testing.T) {
	type testCase struct {
		Input string

		Expected Spec
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := Parse(tc.Input)

		require.NoError(t, err)
		assert.Equal(t, tc.Expected, actual)
	}

	t.Run("AmInHS1IsRewrittenToCollimated", func(t *testing.T) {
		check(t, testCase{
			Input: "am_HS1_top_dlt",
			Expected: Spec{
				Source: "am_collimated", Holder: "HS1", Position: "top", ID: "dlt",
			},
		})
	})

	t.Run("AmInOtherHolderIsNotRewritten", func(t *testing.T) {
		check(t, testCase{
			Input: "am_HS2_top_dlt",
			Expected: Spec{
				Source: "am", Holder: "HS2", Position: "top", ID: "dlt",
			},
		})
	})

	t.Run("UnknownSourcePassesThrough", func(t *testing.T) {
		check(t, testCase{
			Input: "cs_HS2_bottom_foo",
			Expected: Spec{
				Source: "cs", Holder: "HS2", Position: "bottom", ID: "foo",
			},
		})
	})

	t.Run("WrongArity", func(t *testing.T) {
		for _, input := range []string{"", "am", "am_HS1_top", "am_HS1_top_dlt_extra"} {
			_, err := Parse(input)

			var malformedErr *errors.Malformed
			require.ErrorAs(t, err, &malformedErr, "input %q", input)
			assert.Equal(t, input, malformedErr.Input)
		}
	})
}

func TestSpecKeys(t *testing.T) {
	spec, err := Parse("am_HS1_top_dlt")
	require.NoError(t, err)

	assert.Equal(t, "am", spec.RawSource())
	assert.Equal(t, "am_HS1", spec.SourceKey())
}
