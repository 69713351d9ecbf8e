// Package ini parses, serializes, compares and merges INI-style
// configuration documents while preserving the formatting metadata
// most INI readers discard: comments, value quoting and element order.
//
// The document model lives in the ir subpackage; parse and encode hold
// the text grammar; libdiff holds the structural diff. This package
// ties them together with Load/Save entry points that handle text
// encodings, and Compare/Merge entry points for three-way-style
// selective merging.
//
// Documents are not safe for concurrent mutation. Clone is the
// mechanism for handing state to another owner; clones are fully
// independent.
package ini
