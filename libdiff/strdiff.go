package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ValueDiff returns the character-level edits turning the old value
// into the new one, cleaned up for human display.
func (d *PropertyDiff) ValueDiff() []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(d.OldValue, d.NewValue, false)
	return dmp.DiffCleanupSemantic(diffs)
}
