// Package libdiff structurally compares two ir.Documents.
//
// Diff matches sections by case-insensitive name, then compares
// matched pairs property by property. Added and removed elements carry
// cloned evidence so a diff stays valid when the source documents are
// edited afterwards. A diff can also be built by hand — for instance
// with a single added property — and handed to the merge engine.
package libdiff
