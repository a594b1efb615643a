package space_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexspace/combin"
	"github.com/katalvlaran/lexspace/space"
)

var abc = space.MustPool("A", "B", "C")

func mustSel(t *testing.T) func(space.Selection, error) space.Selection {
	return func(s space.Selection, err error) space.Selection {
		t.Helper()
		require.NoError(t, err)
		return s
	}
}

// unrankAll returns every element of sp as joined strings, in rank order.
func unrankAll(t *testing.T, sp *space.Space, sep string) []string {
	t.Helper()
	n := sp.Count().Int64()
	out := make([]string, 0, n)
	for r := int64(0); r < n; r++ {
		e, err := sp.Unrank(big.NewInt(r))
		require.NoError(t, err)
		out = append(out, e.Join(sep))
	}
	return out
}

func TestNewPool(t *testing.T) {
	_, err := space.NewPool()
	assert.ErrorIs(t, err, space.ErrInvalidSpec)
	_, err = space.NewPool("A", "B", "A")
	assert.ErrorIs(t, err, space.ErrInvalidSpec)

	p, err := space.NewPool("x", "y")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "y", p.Item(1))
	i, ok := p.Index("y")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = p.Index("z")
	assert.False(t, ok)

	items := p.Items()
	items[0] = "mutated"
	assert.Equal(t, "x", p.Item(0), "Items must return a copy")

	assert.Panics(t, func() { space.MustPool() })
}

func TestSelection_InvalidSpec(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (space.Selection, error)
	}{
		{"repeated negative", func() (space.Selection, error) { return space.FixedRepeated(-1, abc) }},
		{"distinct too many", func() (space.Selection, error) { return space.FixedDistinct(4, abc) }},
		{"distinct negative", func() (space.Selection, error) { return space.FixedDistinct(-1, abc) }},
		{"permutation too many", func() (space.Selection, error) { return space.Permutation(4, abc) }},
		{"ranged min > max", func() (space.Selection, error) { return space.Ranged(2, 1, abc) }},
		{"ranged negative min", func() (space.Selection, error) { return space.Ranged(-1, 1, abc) }},
		{"ranged max > pool", func() (space.Selection, error) { return space.Ranged(1, 4, abc) }},
		{"ranged bad band", func() (space.Selection, error) { return space.RangedOf(space.KindRanged, 1, 2, abc) }},
		{"empty pool", func() (space.Selection, error) { return space.FixedRepeated(1, space.Pool{}) }},
		{"arrangement mismatch", func() (space.Selection, error) { return space.Arrangement(abc, []int{1, 2}) }},
		{"arrangement negative", func() (space.Selection, error) { return space.Arrangement(abc, []int{1, -2, 0}) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			assert.ErrorIs(t, err, space.ErrInvalidSpec)
		})
	}

	_, err := space.FixedDistinct(4, abc)
	assert.ErrorIs(t, err, combin.ErrInvalidSize, "engine cause is preserved")

	_, err = space.New()
	assert.ErrorIs(t, err, space.ErrInvalidSpec)
	_, err = space.New(space.Selection{})
	assert.ErrorIs(t, err, space.ErrInvalidSpec)
}

func TestSelection_Counts(t *testing.T) {
	assert.Equal(t, int64(3), mustSel(t)(space.FixedDistinct(2, abc)).Count().Int64())
	assert.Equal(t, int64(6), mustSel(t)(space.Permutation(2, abc)).Count().Int64())
	assert.Equal(t, int64(4), mustSel(t)(space.FixedRepeated(2, space.MustPool("0", "1"))).Count().Int64())
	// 3 + 3 + 1
	assert.Equal(t, int64(7), mustSel(t)(space.Ranged(1, 3, abc)).Count().Int64())
	// 1 + 3 + 9
	assert.Equal(t, int64(13), mustSel(t)(space.RangedOf(space.KindRepeated, 0, 2, abc)).Count().Int64())
	assert.Equal(t, int64(70), mustSel(t)(space.Arrangement(space.MustPool("1", "0"), []int{4, 4})).Count().Int64())
	assert.Equal(t, int64(0), space.Selection{}.Count().Int64())
}

func TestSelection_Accessors(t *testing.T) {
	s := mustSel(t)(space.RangedOf(space.KindPermutation, 1, 2, abc))
	assert.Equal(t, space.KindRanged, s.Kind())
	assert.Equal(t, space.KindPermutation, s.Band())
	lo, hi := s.Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, "ranged(permutation 1..2 of 3)", s.String())

	d := mustSel(t)(space.FixedDistinct(2, abc))
	assert.Equal(t, space.KindDistinct, d.Band())
	assert.Equal(t, "distinct(2 of 3)", d.String())
	assert.Nil(t, d.Counts())

	a := mustSel(t)(space.Arrangement(abc, []int{1, 0, 2}))
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, []int{1, 0, 2}, a.Counts())
	assert.Equal(t, "arrangement", a.Kind().String())
	assert.Equal(t, "Kind(42)", space.Kind(42).String())
}

// Ranged ordering is by increasing size, then lexicographic within a size.
func TestRanged_Order(t *testing.T) {
	sp, err := space.New(mustSel(t)(space.Ranged(0, 2, abc)))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"", "A", "B", "C", "AB", "AC", "BC"},
		unrankAll(t, sp, ""))

	sp, err = space.New(mustSel(t)(space.RangedOf(space.KindRepeated, 1, 2, space.MustPool("a", "b"))))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"a", "b", "aa", "ab", "ba", "bb"},
		unrankAll(t, sp, ""))
}

// The first declared dimension varies slowest.
func TestComposite_Order(t *testing.T) {
	d1 := mustSel(t)(space.FixedDistinct(1, space.MustPool("x", "y")))
	d2 := mustSel(t)(space.Permutation(2, abc))
	sp, err := space.New(d1, d2)
	require.NoError(t, err)
	assert.Equal(t, int64(12), sp.Count().Int64())
	assert.Equal(t, 2, sp.Dims())
	assert.Equal(t, space.KindPermutation, sp.Dim(1).Kind())

	assert.Equal(t, []string{
		"xAB", "xAC", "xBA", "xBC", "xCA", "xCB",
		"yAB", "yAC", "yBA", "yBC", "yCA", "yCB",
	}, unrankAll(t, sp, ""))
}

func TestComposite_Bijection(t *testing.T) {
	sp, err := space.New(
		mustSel(t)(space.Ranged(1, 2, abc)),
		mustSel(t)(space.FixedRepeated(2, space.MustPool("0", "1"))),
		mustSel(t)(space.Arrangement(space.MustPool("p", "q"), []int{1, 2})),
	)
	require.NoError(t, err)
	// (3+3) · 4 · 3
	require.Equal(t, int64(72), sp.Count().Int64())

	var prev [][]int
	for r := int64(0); r < 72; r++ {
		rank := big.NewInt(r)
		e, err := sp.Unrank(rank)
		require.NoError(t, err)
		back, err := sp.Rank(e)
		require.NoError(t, err)
		assert.Equal(t, r, back.Int64())

		idx, err := sp.UnrankIndices(rank)
		require.NoError(t, err)
		back, err = sp.RankIndices(idx)
		require.NoError(t, err)
		assert.Equal(t, r, back.Int64())

		if prev != nil {
			assert.True(t, lessTuple(sp, prev, idx), "monotone at %d", r)
		}
		prev = idx
	}
}

// lessTuple orders per-dimension index parts: dimension by dimension,
// shorter part first, then lexicographic.
func lessTuple(sp *space.Space, a, b [][]int) bool {
	for i := 0; i < sp.Dims(); i++ {
		if len(a[i]) != len(b[i]) {
			return len(a[i]) < len(b[i])
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return a[i][j] < b[i][j]
			}
		}
	}
	return false
}

func TestBoundary(t *testing.T) {
	sp, err := space.New(mustSel(t)(space.FixedDistinct(2, abc)))
	require.NoError(t, err)

	last := new(big.Int).Sub(sp.Count(), big.NewInt(1))
	e, err := sp.Unrank(last)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, e.Items())

	_, err = sp.Unrank(sp.Count())
	assert.ErrorIs(t, err, space.ErrRankOutOfRange)
	_, err = sp.Unrank(big.NewInt(-1))
	assert.ErrorIs(t, err, space.ErrRankOutOfRange)
	_, err = sp.Unrank(nil)
	assert.ErrorIs(t, err, space.ErrRankOutOfRange)
}

func TestRank_NotInSpace(t *testing.T) {
	sp, err := space.New(
		mustSel(t)(space.FixedDistinct(2, abc)),
		mustSel(t)(space.Ranged(0, 1, abc)),
	)
	require.NoError(t, err)

	cases := []struct {
		name string
		e    space.Element
	}{
		{"wrong dims", space.NewElement([]string{"A", "B"})},
		{"unknown item", space.NewElement([]string{"A", "Z"}, nil)},
		{"unsorted distinct", space.NewElement([]string{"B", "A"}, nil)},
		{"wrong size", space.NewElement([]string{"A"}, nil)},
		{"ranged too long", space.NewElement([]string{"A", "B"}, []string{"A", "B"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sp.Rank(tc.e)
			assert.ErrorIs(t, err, space.ErrNotInSpace)
		})
	}

	r, err := sp.Rank(space.NewElement([]string{"B", "C"}, []string{"C"}))
	require.NoError(t, err)
	assert.Equal(t, int64(11), r.Int64())
}

func TestElement(t *testing.T) {
	e := space.NewElement([]string{"a", "b"}, nil, []string{"c"})
	assert.Equal(t, 3, e.Dims())
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, []string{"a", "b", "c"}, e.Items())
	assert.Equal(t, "abc", e.String())
	assert.Equal(t, "a-b-c", e.Join("-"))
	assert.Empty(t, e.Part(1))
	assert.True(t, e.Equal(space.NewElement([]string{"a", "b"}, []string{}, []string{"c"})))
	assert.False(t, e.Equal(space.NewElement([]string{"a"}, []string{"b"}, []string{"c"})))
}

// Ranks far beyond 64 bits round-trip.
func TestLargeSpace(t *testing.T) {
	letters := make([]string, 26)
	for i := range letters {
		letters[i] = string(rune('a' + i))
	}
	pool := space.MustPool(letters...)
	sp, err := space.New(
		mustSel(t)(space.FixedRepeated(20, pool)),
		mustSel(t)(space.Permutation(10, pool)),
	)
	require.NoError(t, err)
	assert.Greater(t, sp.Count().BitLen(), 128)

	r := new(big.Int).Div(sp.Count(), big.NewInt(7))
	e, err := sp.Unrank(r)
	require.NoError(t, err)
	assert.Equal(t, 30, e.Len())
	back, err := sp.Rank(e)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Cmp(r))
}

func TestPartition(t *testing.T) {
	sp, err := space.New(mustSel(t)(space.Permutation(3, space.MustPool("a", "b", "c", "d"))))
	require.NoError(t, err)

	ranges, err := sp.Partition(5)
	require.NoError(t, err)
	require.Len(t, ranges, 5)
	// 24 = 5+5+5+5+4
	want := []string{"[0,5)", "[5,10)", "[10,15)", "[15,20)", "[20,24)"}
	for i, r := range ranges {
		assert.Equal(t, want[i], r.String())
	}
	assert.Equal(t, int64(4), ranges[4].Len().Int64())
	assert.True(t, ranges[1].Contains(big.NewInt(9)))
	assert.False(t, ranges[1].Contains(big.NewInt(10)))

	ranges, err = space.Partition(big.NewInt(3), 10)
	require.NoError(t, err)
	assert.Len(t, ranges, 3, "never yields empty ranges")

	_, err = sp.Partition(0)
	assert.ErrorIs(t, err, space.ErrInvalidSpec)
	_, err = space.Partition(big.NewInt(0), 2)
	assert.ErrorIs(t, err, space.ErrInvalidSpec)
}
