package ini

import (
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/libdiff"
)

// Compare reports the structural differences from left to right:
// sections only in right are added, sections only in left are removed,
// and matched pairs are compared property by property.
func Compare(left, right *ir.Document) *libdiff.DocumentDiff {
	return libdiff.Diff(left, right)
}
