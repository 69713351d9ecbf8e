package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ini-format/go-ini/encode"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/libdiff"
	"github.com/ini-format/go-ini/parse"
)

func mustParse(t *testing.T, text string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(text)
	require.NoError(t, err)
	return doc
}

// Applying the full diff of A against B onto A must make A structurally
// equal to B.
func TestMergeFullConvergence(t *testing.T) {
	t.Parallel()
	a := mustParse(t, `top=old
[common]
same=1
change=before
drop=me
[only-a]
x=1
`)
	b := mustParse(t, `top=new
[common]
same=1
change=after
add=me
[only-b]
y=2
`)

	diff := Compare(a, b)
	res, err := Merge(a, diff, MergeAll())
	require.NoError(t, err)

	assert.Equal(t, 1, res.SectionsAdded)
	assert.Equal(t, 1, res.SectionsRemoved)
	assert.Equal(t, 1, res.PropertiesAdded)
	assert.Equal(t, 1, res.PropertiesRemoved)
	assert.Equal(t, 2, res.PropertiesModified) // top and change
	assert.Equal(t, 6, res.TotalChanges())

	assert.False(t, Compare(a, b).HasChanges())
}

func TestMergeZeroOptionsAppliesNothing(t *testing.T) {
	t.Parallel()
	a := mustParse(t, "[s]\nk=1\n")
	b := mustParse(t, "[s]\nk=2\n[t]\nx=1\n")

	before := encode.MustString(a)
	res, err := Merge(a, Compare(a, b), MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalChanges())
	assert.Equal(t, before, encode.MustString(a))
}

func TestMergeSelective(t *testing.T) {
	t.Parallel()
	b := mustParse(t, "[s]\nchange=after\nadd=1\n[new]\nn=1\n")

	mk := func() *ir.Document {
		return mustParse(t, "[s]\nchange=before\ndrop=1\n[old]\no=1\n")
	}

	a := mk()
	res, err := Merge(a, Compare(a, b), MergeOptions{AddSections: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalChanges())
	assert.True(t, a.Has("new"))
	assert.True(t, a.Has("old"))
	assert.Equal(t, "before", a.Get("s").Get("change").Value())

	a = mk()
	res, err = Merge(a, Compare(a, b), MergeOptions{ModifyProperties: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalChanges())
	assert.Equal(t, "after", a.Get("s").Get("change").Value())
	assert.True(t, a.Get("s").Has("drop"))
	assert.False(t, a.Has("new"))

	a = mk()
	res, err = Merge(a, Compare(a, b), MergeOptions{RemoveProperties: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalChanges())
	assert.False(t, a.Get("s").Has("drop"))
}

func TestMergeHandBuiltDiff(t *testing.T) {
	t.Parallel()
	target := mustParse(t, "existing=1\n")

	diff := &libdiff.DocumentDiff{
		ModifiedSections: []*libdiff.SectionDiff{{
			Name: "fresh",
			ModifiedProperties: []libdiff.PropertyDiff{
				{Name: "k", OldValue: "whatever", NewValue: "v"},
			},
		}},
	}
	res, err := Merge(target, diff, MergeAll())
	require.NoError(t, err)
	assert.Equal(t, 1, res.PropertiesModified)

	// modifying inside an absent section creates it
	require.True(t, target.Has("fresh"))
	assert.Equal(t, "v", target.Get("fresh").Get("k").Value())
}

func TestMergeStaleRemovalsSkipped(t *testing.T) {
	t.Parallel()
	target := mustParse(t, "a=1\n")

	gone, err := ir.NewSection("gone")
	require.NoError(t, err)
	prop, err := ir.NewPropertyValue("missing", "x")
	require.NoError(t, err)
	diff := &libdiff.DocumentDiff{
		RemovedSections: []*ir.Section{gone},
		ModifiedSections: []*libdiff.SectionDiff{{
			Name:              "",
			RemovedProperties: []*ir.Property{prop},
		}},
	}
	res, err := Merge(target, diff, MergeAll())
	require.NoError(t, err)
	assert.Equal(t, 0, res.SectionsRemoved)
	assert.Equal(t, 0, res.PropertiesRemoved)
	assert.Equal(t, "1", target.DefaultSection().Get("a").Value())
}

func TestMergeDoesNotAliasDiff(t *testing.T) {
	t.Parallel()
	a := mustParse(t, "")
	b := mustParse(t, "[s]\nk=v\n")
	diff := Compare(a, b)

	_, err := Merge(a, diff, MergeAll())
	require.NoError(t, err)
	a.Get("s").Get("k").SetValue("mutated")
	assert.Equal(t, "v", diff.AddedSections[0].Get("k").Value())
}
