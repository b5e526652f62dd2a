package disjointset_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellseg/disjointset"
)

// forEachVariant runs fn as a subtest per variant.
func forEachVariant(t *testing.T, fn func(t *testing.T, v disjointset.Variant)) {
	t.Helper()
	for _, v := range disjointset.Variants {
		v := v
		t.Run(v.String(), func(t *testing.T) { fn(t, v) })
	}
}

// randomUnions applies k seeded random unions to s and returns the pairs.
func randomUnions(s disjointset.Set, k int, seed int64) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	n := s.Len()
	pairs := make([][2]int, k)
	for u := 0; u < k; u++ {
		i, j := rng.Intn(n), rng.Intn(n)
		s.Union(i, j)
		pairs[u] = [2]int{i, j}
	}
	return pairs
}

func TestNew_FreshSetIsAllSingletons(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		const n = 12
		s := disjointset.New(v, n)
		require.Equal(t, n, s.Len())
		for i := 0; i < n; i++ {
			assert.True(t, s.Find(i, i), "Find(%d,%d)", i, i)
			for j := 0; j < n; j++ {
				if i != j {
					assert.False(t, s.Find(i, j), "Find(%d,%d)", i, j)
				}
			}
		}
		assert.Equal(t, n, disjointset.Count(s))
	})
}

func TestNew_ReturnsVariantType(t *testing.T) {
	assert.IsType(t, &disjointset.NaiveSet{}, disjointset.New(disjointset.Naive, 2))
	assert.IsType(t, &disjointset.FastSet{}, disjointset.New(disjointset.Fast, 2))
	assert.IsType(t, &disjointset.NaiveSet{}, disjointset.NewNaive(1))
	assert.IsType(t, &disjointset.FastSet{}, disjointset.NewFast(1))
}

func TestNew_ZeroSize(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		s := disjointset.New(v, 0)
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, disjointset.Classes(s))
	})
}

func TestUnionThenFind(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		s := disjointset.New(v, 50)
		for _, p := range randomUnions(s, 40, 7) {
			assert.True(t, s.Find(p[0], p[1]), "Find(%d,%d) after Union", p[0], p[1])
		}
	})
}

// TestFind_IsEquivalence checks reflexivity, symmetry and transitivity of Find
// after a random sequence of unions.
func TestFind_IsEquivalence(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		const n = 30
		s := disjointset.New(v, n)
		randomUnions(s, 18, 42)

		for i := 0; i < n; i++ {
			require.True(t, s.Find(i, i))
			for j := 0; j < n; j++ {
				require.Equal(t, s.Find(i, j), s.Find(j, i), "symmetry %d,%d", i, j)
				if !s.Find(i, j) {
					continue
				}
				for k := 0; k < n; k++ {
					if s.Find(j, k) {
						require.True(t, s.Find(i, k), "transitivity %d,%d,%d", i, j, k)
					}
				}
			}
		}
	})
}

func TestSetLabel_Idempotent(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		s := disjointset.New(v, 40)
		randomUnions(s, 25, 3)
		for i := 0; i < s.Len(); i++ {
			first := s.SetLabel(i)
			assert.Equal(t, first, s.SetLabel(i), "SetLabel(%d)", i)
			assert.True(t, s.Find(i, first), "label %d must be in the class of %d", first, i)
		}
	})
}

// TestVariants_SamePartition runs identical unions through both variants and
// compares the resulting partitions.
func TestVariants_SamePartition(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		naive := disjointset.New(disjointset.Naive, 64)
		fast := disjointset.New(disjointset.Fast, 64)
		for _, p := range randomUnions(naive, 48, seed) {
			fast.Union(p[0], p[1])
		}
		if diff := cmp.Diff(disjointset.Classes(naive), disjointset.Classes(fast)); diff != "" {
			t.Errorf("seed %d: partitions differ (-naive +fast):\n%s", seed, diff)
		}
	}
}

func TestClasses(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		s := disjointset.New(v, 6)
		s.Union(4, 1)
		s.Union(5, 0)
		s.Union(1, 3)
		want := [][]int{{0, 5}, {1, 3, 4}, {2}}
		if diff := cmp.Diff(want, disjointset.Classes(s)); diff != "" {
			t.Errorf("Classes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, disjointset.Count(s))
	})
}

func TestOutOfRange_Panics(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		s := disjointset.New(v, 3)
		calls := map[string]func(){
			"Union":    func() { s.Union(0, 3) },
			"Find":     func() { s.Find(-1, 0) },
			"SetLabel": func() { s.SetLabel(3) },
		}
		for op, call := range calls {
			t.Run(op, func(t *testing.T) {
				defer func() {
					r := recover()
					require.NotNil(t, r, "%s must panic", op)
					err, ok := r.(error)
					require.True(t, ok, "panic value %T is not an error", r)
					assert.ErrorIs(t, err, disjointset.ErrIndexOutOfRange)
					var ie *disjointset.IndexError
					require.True(t, errors.As(err, &ie))
					assert.Equal(t, op, ie.Op)
					assert.Equal(t, 3, ie.Len)
				}()
				call()
			})
		}
	})
}

func TestNew_NegativeSizePanics(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v disjointset.Variant) {
		assert.PanicsWithValue(t, disjointset.ErrNegativeSize, func() {
			disjointset.New(v, -1)
		})
	})
}

func TestNew_UnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { disjointset.New(disjointset.Variant(9), 1) })
}

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in   string
		want disjointset.Variant
		err  error
	}{
		{"naive", disjointset.Naive, nil},
		{" Fast ", disjointset.Fast, nil},
		{"NAIVE", disjointset.Naive, nil},
		{"idsset", 0, disjointset.ErrUnknownVariant},
		{"", 0, disjointset.ErrUnknownVariant},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := disjointset.ParseVariant(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String round-trip")
		})
	}
}

func mustParse(t *testing.T, s string) disjointset.Variant {
	t.Helper()
	v, err := disjointset.ParseVariant(s)
	require.NoError(t, err)
	return v
}
