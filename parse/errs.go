package parse

import "errors"

// Reason strings recorded in ir.ParsingError. Callers and tests match
// these verbatim; do not reword them.
const (
	ReasonMissingBracket    = "Missing closing bracket in section declaration"
	ReasonMissingEquals     = "Missing equals sign in key-value pair"
	ReasonEmptyKey          = "Key is empty"
	ReasonEmptySection      = "Section name is empty"
	ReasonUnterminatedQuote = "Unterminated quote: missing closing quotation mark"
	ReasonIncompleteEscape  = "Invalid escape sequence: incomplete escape marker"
	ReasonBadQuoteFormat    = "Invalid quote format"
	ReasonContentAfterQuote = "Invalid content after closing quote"
)

// ErrParse wraps every hard parse failure: the first malformed line
// when error collection is off, and duplicate-name aborts under the
// ErrorOnDuplicate policies.
var ErrParse = errors.New("parse error")
