package ir

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkSync asserts the container's sequence and index hold exactly the
// same membership under case folding.
func checkSync(t *testing.T, o *ordered[*Property]) {
	t.Helper()
	require.Equal(t, len(o.seq), len(o.idx))
	for _, p := range o.seq {
		got, ok := o.idx[strings.ToLower(p.Name())]
		require.True(t, ok, "sequence element %q missing from index", p.Name())
		require.Same(t, p, got)
	}
}

func TestOrderedRandomOpsStaySynced(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	names := []string{"alpha", "Beta", "GAMMA", "delta", "Epsilon", "zeta"}
	o := &ordered[*Property]{}
	for op := 0; op < 500; op++ {
		name := names[rng.Intn(len(names))]
		switch rng.Intn(4) {
		case 0:
			p, err := NewProperty(name)
			require.NoError(t, err)
			if o.Has(name) {
				require.ErrorIs(t, o.Add(p), ErrDuplicateName)
			} else {
				require.NoError(t, o.Add(p))
			}
		case 1:
			p, err := NewProperty(name)
			require.NoError(t, err)
			had := o.Has(name)
			at := rng.Intn(o.Len() + 1)
			err = o.Insert(at, p)
			if had {
				require.ErrorIs(t, err, ErrDuplicateName)
			} else {
				require.NoError(t, err)
			}
		case 2:
			o.Remove(name)
		case 3:
			if o.Len() > 0 {
				o.RemoveAt(rng.Intn(o.Len()))
			}
		}
		checkSync(t, o)
	}
}

func TestOrderedReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	o := &ordered[*Property]{}
	for _, n := range []string{"a", "b", "c"} {
		p, err := NewProperty(n)
		require.NoError(t, err)
		require.NoError(t, o.Add(p))
	}
	repl, err := NewPropertyValue("B", "x")
	require.NoError(t, err)
	require.True(t, o.Replace(repl))
	require.Equal(t, []string{"a", "B", "c"}, o.Names())
	got, ok := o.Get("b")
	require.True(t, ok)
	require.Same(t, repl, got)
	checkSync(t, o)

	miss, err := NewProperty("zz")
	require.NoError(t, err)
	require.False(t, o.Replace(miss))
}
