package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ini-format/go-ini/debug"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/token"
)

type parser struct {
	opts    parseOpts
	doc     *ir.Document
	cur     *ir.Section
	pending []*ir.Comment
	errs    []*ir.ParsingError
}

// Parse converts raw INI text into a document. See the package
// documentation for the grammar and error model.
func Parse(data []byte, opts ...Option) (*ir.Document, error) {
	return ParseString(string(data), opts...)
}

func ParseString(text string, opts ...Option) (*ir.Document, error) {
	o := parseOpts{
		prefixes:      ir.DefaultCommentPrefixes,
		defaultPrefix: ir.DefaultCommentPrefix,
		keyPolicy:     ir.LastWin,
		sectionPolicy: ir.MergeSections,
	}
	for _, f := range opts {
		f(&o)
	}
	if o.keyPolicy == ir.MergeSections {
		return nil, fmt.Errorf("%w: %s is not a key policy", ir.ErrBadPolicy, o.keyPolicy)
	}
	doc := ir.NewDocument()
	if err := doc.SetCommentPrefixes(o.prefixes, o.defaultPrefix); err != nil {
		return nil, err
	}
	p := &parser{opts: o, doc: doc, cur: doc.DefaultSection()}
	for i, ln := range splitLines(text) {
		if err := p.line(i+1, ln); err != nil {
			return nil, err
		}
	}
	p.flushTrailing()
	doc.SetParsingErrors(p.errs)
	return doc, nil
}

// splitLines splits on '\n', dropping a trailing '\r' from each line
// and the empty tail after a final newline. A line's number is its
// slice index plus one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

func (p *parser) line(num int, raw string) error {
	kind, start := token.Classify(raw, p.opts.prefixes)
	if debug.Parse() {
		debug.Logf("parse line %d %s: %q\n", num, kind, raw)
	}
	switch kind {
	case token.Blank:
		return nil
	case token.CommentLine:
		p.pending = append(p.pending, mkComment(raw[start], raw[start+1:]))
		return nil
	case token.SectionLine:
		return p.sectionLine(num, raw, start)
	}
	return p.keyValueLine(num, raw)
}

// recordErr reports one malformed line: through the callback, then
// either into the collected list or as a hard failure.
func (p *parser) recordErr(num int, raw, reason string) error {
	e := &ir.ParsingError{LineNumber: num, Line: raw, Reason: reason}
	if p.opts.onError != nil {
		p.opts.onError(e)
	}
	if !p.opts.collect {
		return fmt.Errorf("%w: %s", ErrParse, e.Error())
	}
	p.errs = append(p.errs, e)
	return nil
}

func (p *parser) sectionLine(num int, raw string, start int) error {
	end := strings.IndexByte(raw[start:], ']')
	if end < 0 {
		return p.recordErr(num, raw, ReasonMissingBracket)
	}
	end += start
	name := strings.TrimSpace(raw[start+1 : end])
	sec, err := ir.NewSection(name)
	if err != nil {
		return p.recordErr(num, raw, ReasonEmptySection)
	}
	if i := token.IndexNonSpace(raw, end+1); i >= 0 {
		if strings.IndexByte(p.opts.prefixes, raw[i]) >= 0 {
			sec.SetInlineComment(mkComment(raw[i], raw[i+1:]))
		}
		// anything else after ']' is ignored
	}
	if err := p.doc.PutSection(sec, p.opts.sectionPolicy, p.opts.keyPolicy); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrParse, num, err)
	}
	// the section now present under this name receives what follows,
	// whichever side of the duplicate policy survived; pending comments
	// go to the survivor too, not to a discarded duplicate
	p.cur = p.doc.Get(name)
	p.attachPending(p.cur.PreComments())
	return nil
}

func (p *parser) keyValueLine(num int, raw string) error {
	eq := strings.IndexByte(raw, '=')
	if eq < 0 {
		return p.recordErr(num, raw, ReasonMissingEquals)
	}
	key := strings.TrimSpace(raw[:eq])
	if key == "" {
		return p.recordErr(num, raw, ReasonEmptyKey)
	}
	prop, err := ir.NewPropertyValue(key, "")
	if err != nil {
		return p.recordErr(num, raw, ReasonEmptyKey)
	}

	var inline *ir.Comment
	switch i := token.IndexNonSpace(raw, eq+1); {
	case i < 0:
		// empty value
	case raw[i] == '"':
		val, end, err := token.ScanQuoted(raw, i)
		if err != nil {
			return p.recordErr(num, raw, quoteReason(err))
		}
		prop.SetValue(val)
		prop.SetQuoted(true)
		if j := token.IndexNonSpace(raw, end); j >= 0 {
			if strings.IndexByte(p.opts.prefixes, raw[j]) < 0 {
				if strings.ContainsAny(raw[j:], p.opts.prefixes) {
					return p.recordErr(num, raw, ReasonContentAfterQuote)
				}
				return p.recordErr(num, raw, ReasonBadQuoteFormat)
			}
			inline = mkComment(raw[j], raw[j+1:])
		}
	default:
		val, ci, err := token.ScanUnquoted(raw, i, p.opts.prefixes)
		if err != nil {
			return p.recordErr(num, raw, ReasonIncompleteEscape)
		}
		prop.SetValue(val)
		if ci >= 0 {
			inline = mkComment(raw[ci], raw[ci+1:])
		}
	}

	p.attachPending(prop.PreComments())
	if inline != nil {
		prop.SetInlineComment(inline)
	}
	if err := p.cur.PutProperty(prop, p.opts.keyPolicy); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrParse, num, err)
	}
	return nil
}

func quoteReason(err error) string {
	if errors.Is(err, token.ErrIncompleteEscape) {
		return ReasonIncompleteEscape
	}
	return ReasonUnterminatedQuote
}

func (p *parser) attachPending(cc *ir.CommentCollection) {
	for _, c := range p.pending {
		cc.Append(c)
	}
	p.pending = nil
}

// flushTrailing keeps comment lines at end of input on the document so
// a comment-only tail survives a round trip.
func (p *parser) flushTrailing() {
	for _, c := range p.pending {
		p.doc.TrailingComments().Append(c)
	}
	p.pending = nil
}

// mkComment builds a comment from a slice of one physical line; such
// text cannot contain a line terminator.
func mkComment(prefix byte, value string) *ir.Comment {
	c, err := ir.NewComment(prefix, value)
	if err != nil {
		panic(err)
	}
	return c
}
