// Package parse converts raw INI text into an ir.Document.
//
// The parser is a single pass over physical lines. Lines are blank,
// comments, section headers or key/value pairs; comment lines
// accumulate as pre-comments for the next section or property, and
// text after a value or header that starts with a recognized comment
// prefix becomes that element's inline comment.
//
// Malformed lines are reported as ir.ParsingError records with 1-based
// line numbers and the raw line text. By default the first error
// aborts the parse; with CollectErrors(true) the parser records every
// error on the returned document and keeps the lines that did parse.
package parse
