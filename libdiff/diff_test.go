package libdiff

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/parse"
)

func mustParse(t *testing.T, text string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(text)
	require.NoError(t, err)
	return doc
}

func TestDiffIdentical(t *testing.T) {
	t.Parallel()
	text := "a=1\n[s]\nx=y\n"
	d := Diff(mustParse(t, text), mustParse(t, text))
	assert.False(t, d.HasChanges())
}

func TestDiffSectionsAddedRemoved(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "[gone]\na=1\n[kept]\nx=1\n")
	right := mustParse(t, "[kept]\nx=1\n[new]\nb=2\n")

	d := Diff(left, right)
	require.True(t, d.HasChanges())
	require.Len(t, d.RemovedSections, 1)
	assert.Equal(t, "gone", d.RemovedSections[0].Name())
	require.Len(t, d.AddedSections, 1)
	assert.Equal(t, "new", d.AddedSections[0].Name())
	assert.Empty(t, d.ModifiedSections)
}

func TestDiffPropertyLevel(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "[s]\nkeep=same\nchange=old\ndrop=x\n")
	right := mustParse(t, "[s]\nkeep=same\nchange=new\nadd=y\n")

	d := Diff(left, right)
	require.Len(t, d.ModifiedSections, 1)
	sd := d.ModifiedSections[0]
	assert.Equal(t, "s", sd.Name)

	require.Len(t, sd.RemovedProperties, 1)
	assert.Equal(t, "drop", sd.RemovedProperties[0].Name())
	require.Len(t, sd.AddedProperties, 1)
	assert.Equal(t, "add", sd.AddedProperties[0].Name())
	require.Len(t, sd.ModifiedProperties, 1)
	assert.Equal(t, PropertyDiff{Name: "change", OldValue: "old", NewValue: "new"},
		sd.ModifiedProperties[0])
}

func TestDiffDefaultSection(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "a=1\n")
	right := mustParse(t, "a=2\n")

	d := Diff(left, right)
	require.Len(t, d.ModifiedSections, 1)
	assert.Equal(t, "", d.ModifiedSections[0].Name)
	require.Len(t, d.ModifiedSections[0].ModifiedProperties, 1)
}

// Reordering sections or keys is not a structural change.
func TestDiffIgnoresOrder(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "[a]\nx=1\ny=2\n[b]\nz=3\n")
	right := mustParse(t, "[b]\nz=3\n[a]\ny=2\nx=1\n")
	assert.False(t, Diff(left, right).HasChanges())
}

func TestDiffCaseInsensitiveNames(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "[Server]\nHost=same\n")
	right := mustParse(t, "[SERVER]\nhost=same\n")
	assert.False(t, Diff(left, right).HasChanges())

	// values stay case-sensitive
	right = mustParse(t, "[SERVER]\nhost=SAME\n")
	assert.True(t, Diff(left, right).HasChanges())
}

func TestDiffSymmetry(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "a=1\n[x]\nk=old\n[gone]\ng=1\n")
	right := mustParse(t, "a=1\n[x]\nk=new\n[new]\nn=1\n")

	fwd := Diff(left, right)
	rev := Diff(right, left)

	require.Len(t, fwd.AddedSections, len(rev.RemovedSections))
	assert.Equal(t, fwd.AddedSections[0].Name(), rev.RemovedSections[0].Name())
	require.Len(t, fwd.ModifiedSections, 1)
	require.Len(t, rev.ModifiedSections, 1)
	f, r := fwd.ModifiedSections[0].ModifiedProperties[0], rev.ModifiedSections[0].ModifiedProperties[0]
	assert.Equal(t, f.OldValue, r.NewValue)
	assert.Equal(t, f.NewValue, r.OldValue)
}

// Diff results carry clones: mutating them must not reach back into the
// compared documents.
func TestDiffDetached(t *testing.T) {
	t.Parallel()
	left := mustParse(t, "[s]\na=1\n")
	right := mustParse(t, "[s]\na=1\nb=2\n")

	d := Diff(left, right)
	require.Len(t, d.ModifiedSections, 1)
	d.ModifiedSections[0].AddedProperties[0].SetValue("changed")
	assert.Equal(t, "2", right.Get("s").Get("b").Value())
}

func TestValueDiff(t *testing.T) {
	t.Parallel()
	pd := PropertyDiff{Name: "k", OldValue: "localhost", NewValue: "localdomain"}
	var left, right string
	for _, seg := range pd.ValueDiff() {
		switch seg.Type {
		case diffpatch.DiffDelete:
			left += seg.Text
		case diffpatch.DiffInsert:
			right += seg.Text
		case diffpatch.DiffEqual:
			left += seg.Text
			right += seg.Text
		}
	}
	assert.Equal(t, pd.OldValue, left)
	assert.Equal(t, pd.NewValue, right)
}
