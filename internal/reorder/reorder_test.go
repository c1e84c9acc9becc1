package reorder

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

func letters(names ...string) types.Collection {
	c := make(types.Collection, len(names))
	for i, n := range names {
		c[i] = types.Link{ID: n, Name: n, URL: "https://" + n}
	}
	return c
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{"forward lands at target in shortened list", 0, 2, []string{"B", "C", "A", "D"}},
		{"forward to last", 0, 3, []string{"B", "C", "D", "A"}},
		{"backward to first", 3, 0, []string{"D", "A", "B", "C"}},
		{"backward one step", 2, 1, []string{"A", "C", "B", "D"}},
		{"forward one step", 1, 2, []string{"A", "C", "B", "D"}},
		{"identity", 2, 2, []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := letters("A", "B", "C", "D")
			got, err := Move(in, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IDs())
			assert.Equal(t, []string{"A", "B", "C", "D"}, in.IDs(), "input must not change")
		})
	}
}

func TestMove_OutOfRange(t *testing.T) {
	in := letters("A", "B", "C")
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 9}}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d_to_%d", c[0], c[1]), func(t *testing.T) {
			got, err := Move(in, c[0], c[1])
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, types.ErrIndexOutOfRange))
		})
	}

	t.Run("empty collection", func(t *testing.T) {
		_, err := Move(nil, 0, 0)
		assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
	})
}

func TestMove_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	build := func(n int) types.Collection {
		c := make(types.Collection, n)
		for i := range c {
			c[i] = types.Link{ID: fmt.Sprintf("id-%d", i), Name: fmt.Sprintf("n%d", i), URL: fmt.Sprintf("u%d", i)}
		}
		return c
	}

	properties.Property("result is a permutation of the input", prop.ForAll(
		func(n, a, b int) bool {
			c := build(n)
			from, to := a%n, b%n
			got, err := Move(c, from, to)
			if err != nil || len(got) != n {
				return false
			}
			want := c.IDs()
			have := got.IDs()
			sort.Strings(want)
			sort.Strings(have)
			for i := range want {
				if want[i] != have[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.Property("moved element ends at the target index", prop.ForAll(
		func(n, a, b int) bool {
			c := build(n)
			from, to := a%n, b%n
			got, err := Move(c, from, to)
			return err == nil && got[to].ID == c[from].ID
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.Property("moving to the same index is identity", prop.ForAll(
		func(n, a int) bool {
			c := build(n)
			i := a % n
			got, err := Move(c, i, i)
			if err != nil {
				return false
			}
			for k := range c {
				if got[k] != c[k] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 1000),
	))

	properties.Property("moving back restores the original order", prop.ForAll(
		func(n, a, b int) bool {
			c := build(n)
			from, to := a%n, b%n
			moved, err := Move(c, from, to)
			if err != nil {
				return false
			}
			back, err := Move(moved, to, from)
			if err != nil {
				return false
			}
			for k := range c {
				if back[k] != c[k] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
