package libdiff

import (
	"github.com/ini-format/go-ini/debug"
	"github.com/ini-format/go-ini/ir"
)

// PropertyDiff records a key present in both sections with different
// values.
type PropertyDiff struct {
	Name     string
	OldValue string
	NewValue string
}

// SectionDiff holds the property-level differences of one matched
// section pair. The default section pair appears under the reserved
// empty name.
type SectionDiff struct {
	Name               string
	AddedProperties    []*ir.Property
	RemovedProperties  []*ir.Property
	ModifiedProperties []PropertyDiff
}

func (d *SectionDiff) Empty() bool {
	return len(d.AddedProperties) == 0 &&
		len(d.RemovedProperties) == 0 &&
		len(d.ModifiedProperties) == 0
}

// DocumentDiff is the structural difference between two documents,
// reading left-to-right: added means present only on the right.
type DocumentDiff struct {
	AddedSections    []*ir.Section
	RemovedSections  []*ir.Section
	ModifiedSections []*SectionDiff
}

// HasChanges reports whether any list is non-empty.
func (d *DocumentDiff) HasChanges() bool {
	return len(d.AddedSections) > 0 ||
		len(d.RemovedSections) > 0 ||
		len(d.ModifiedSections) > 0
}

// Diff compares left and right. Moved sections are matched pairs, not
// remove/add pairs; removed and modified sections come out in left's
// order, added sections in right's.
func Diff(left, right *ir.Document) *DocumentDiff {
	res := &DocumentDiff{}
	if sd := DiffSections(left.DefaultSection(), right.DefaultSection()); !sd.Empty() {
		res.ModifiedSections = append(res.ModifiedSections, sd)
	}
	for i := 0; i < left.Len(); i++ {
		ls := left.At(i)
		rs := right.Get(ls.Name())
		if rs == nil {
			if debug.Diff() {
				debug.Logf("diff: section %q removed\n", ls.Name())
			}
			res.RemovedSections = append(res.RemovedSections, ls.Clone())
			continue
		}
		if sd := DiffSections(ls, rs); !sd.Empty() {
			res.ModifiedSections = append(res.ModifiedSections, sd)
		}
	}
	for i := 0; i < right.Len(); i++ {
		rs := right.At(i)
		if !left.Has(rs.Name()) {
			if debug.Diff() {
				debug.Logf("diff: section %q added\n", rs.Name())
			}
			res.AddedSections = append(res.AddedSections, rs.Clone())
		}
	}
	return res
}

// DiffSections compares one matched section pair property by property.
// A key present on both sides with equal values is not reported. The
// result may be Empty; Diff omits empty results from the document
// diff.
func DiffSections(left, right *ir.Section) *SectionDiff {
	sd := &SectionDiff{Name: left.Name()}
	for i := 0; i < left.Len(); i++ {
		lp := left.At(i)
		rp := right.Get(lp.Name())
		if rp == nil {
			sd.RemovedProperties = append(sd.RemovedProperties, lp.Clone())
			continue
		}
		if lp.Value() != rp.Value() {
			sd.ModifiedProperties = append(sd.ModifiedProperties, PropertyDiff{
				Name:     lp.Name(),
				OldValue: lp.Value(),
				NewValue: rp.Value(),
			})
		}
	}
	for i := 0; i < right.Len(); i++ {
		rp := right.At(i)
		if !left.Has(rp.Name()) {
			sd.AddedProperties = append(sd.AddedProperties, rp.Clone())
		}
	}
	return sd
}
