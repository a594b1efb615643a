package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexspace/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"LowerIDFn_min", builder.LowerIDFn, 0, "a", false},
		{"LowerIDFn_tooHigh", builder.LowerIDFn, 26, "", true},

		{"AlphanumericIDFn_zero", builder.AlphanumericIDFn, 0, "0", false},
		{"AlphanumericIDFn_low", builder.AlphanumericIDFn, 10, "a", false},
		{"AlphanumericIDFn_wrap", builder.AlphanumericIDFn, 36, "10", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -5, "", true},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"HexIDFn_ten", builder.HexIDFn, 10, "a", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},

		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("x"), 12, "x12", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("x"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestIDSchemeShorthands checks the pools the With*IDs shorthands generate.
func TestIDSchemeShorthands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  builder.BuilderOption
		n    int
		head []string
		last string
	}{
		{"default", builder.WithDefaultIDs(), 3, []string{"0", "1"}, "2"},
		{"symbol", builder.WithSymbolIDs(), 3, []string{"A", "B"}, "C"},
		{"lower", builder.WithLowerIDs(), 3, []string{"a", "b"}, "c"},
		{"excel", builder.WithExcelColumnIDs(), 28, []string{"A", "B"}, "AB"},
		{"hex", builder.WithHexIDs(), 17, []string{"0", "1"}, "10"},
		{"alphanumeric", builder.WithAlphanumericIDs(), 36, []string{"0", "1"}, "z"},
		{"prefix", builder.WithSymbNumb("k"), 3, []string{"k0", "k1"}, "k2"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build([]builder.BuilderOption{tc.opt}, builder.FixedRepeated(1, builder.Symbols(tc.n)))
			require.NoError(t, err)
			items := g.Space().Dim(0).Pool().Items()
			require.Len(t, items, tc.n)
			assert.Equal(t, tc.head, items[:2])
			assert.Equal(t, tc.last, items[tc.n-1])
		})
	}
}
