package ini

import (
	"github.com/ini-format/go-ini/debug"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/libdiff"
)

// MergeOptions gates which diff categories Merge applies. The switches
// are independent; the zero value applies nothing.
type MergeOptions struct {
	AddSections      bool
	RemoveSections   bool
	AddProperties    bool
	RemoveProperties bool
	ModifyProperties bool
}

// MergeAll enables every category.
func MergeAll() MergeOptions {
	return MergeOptions{
		AddSections:      true,
		RemoveSections:   true,
		AddProperties:    true,
		RemoveProperties: true,
		ModifyProperties: true,
	}
}

func (o MergeOptions) properties() bool {
	return o.AddProperties || o.RemoveProperties || o.ModifyProperties
}

// MergeResult counts the changes a merge actually applied.
type MergeResult struct {
	SectionsAdded      int
	SectionsRemoved    int
	PropertiesAdded    int
	PropertiesRemoved  int
	PropertiesModified int
}

// TotalChanges is the sum of all categories.
func (r MergeResult) TotalChanges() int {
	return r.SectionsAdded + r.SectionsRemoved +
		r.PropertiesAdded + r.PropertiesRemoved + r.PropertiesModified
}

// Merge applies the selected categories of diff onto target, mutating
// it in place. Everything taken from the diff is cloned on the way in,
// so the diff remains reusable. diff may be partial: a hand-built diff
// carrying a single added, removed or modified item merges fine, and
// items that no longer apply (removing an absent section, say) are
// skipped without error.
func Merge(target *ir.Document, diff *libdiff.DocumentDiff, opts MergeOptions) (MergeResult, error) {
	res := MergeResult{}
	if opts.AddSections {
		for _, sec := range diff.AddedSections {
			if debug.Merge() {
				debug.Logf("merge: add section %q\n", sec.Name())
			}
			if err := target.PutSection(sec.Clone(), ir.LastWin, ir.LastWin); err != nil {
				return res, err
			}
			res.SectionsAdded++
		}
	}
	if opts.RemoveSections {
		for _, sec := range diff.RemovedSections {
			if target.Remove(sec.Name()) {
				if debug.Merge() {
					debug.Logf("merge: remove section %q\n", sec.Name())
				}
				res.SectionsRemoved++
			}
		}
	}
	if !opts.properties() {
		return res, nil
	}
	for _, sd := range diff.ModifiedSections {
		sec, err := mergeTarget(target, sd.Name)
		if err != nil {
			return res, err
		}
		if opts.AddProperties {
			for _, p := range sd.AddedProperties {
				if err := sec.PutProperty(p.Clone(), ir.LastWin); err != nil {
					return res, err
				}
				res.PropertiesAdded++
			}
		}
		if opts.RemoveProperties {
			for _, p := range sd.RemovedProperties {
				if sec.Remove(p.Name()) {
					res.PropertiesRemoved++
				}
			}
		}
		if opts.ModifyProperties {
			for _, pd := range sd.ModifiedProperties {
				if _, err := sec.Set(pd.Name, pd.NewValue); err != nil {
					return res, err
				}
				res.PropertiesModified++
			}
		}
	}
	return res, nil
}

// mergeTarget resolves the section a SectionDiff applies to; the
// reserved empty name addresses the default section.
func mergeTarget(target *ir.Document, name string) (*ir.Section, error) {
	if name == "" {
		return target.DefaultSection(), nil
	}
	return target.GetOrCreate(name)
}
