// Package encode serializes an ir.Document back into INI text.
//
// Encoding reproduces each element's pre-comments (one line per
// comment, each with its own prefix), the element's own line, its
// inline comment on the same line, and the stored quoting flag with
// escapes re-applied. Encoding is a pure read of the document: it
// never mutates quoting flags or any other entity state.
package encode
