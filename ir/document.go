package ir

import (
	"fmt"
	"strings"
)

// DefaultCommentPrefixes are the comment prefix characters a new
// document recognizes.
const DefaultCommentPrefixes = ";#"

// DefaultCommentPrefix is the prefix a new document writes new
// comments with.
const DefaultCommentPrefix = ';'

// ParsingError records one malformed input line. The reason strings
// are a stable contract; tooling matches on them verbatim.
type ParsingError struct {
	LineNumber int
	Line       string
	Reason     string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.LineNumber, e.Reason, e.Line)
}

// Document is an ordered collection of sections plus the reserved
// default section holding properties that appear before any header.
// Documents are not safe for concurrent mutation; callers serialize
// access when sharing across goroutines.
type Document struct {
	defSection *Section
	sections   ordered[*Section]

	prefixes      string
	defaultPrefix byte

	trailing CommentCollection
	errs     []*ParsingError
}

func NewDocument() *Document {
	return &Document{
		defSection:    newDefaultSection(),
		prefixes:      DefaultCommentPrefixes,
		defaultPrefix: DefaultCommentPrefix,
	}
}

// DefaultSection returns the reserved unnamed section. It is not part
// of the section sequence.
func (d *Document) DefaultSection() *Section { return d.defSection }

func (d *Document) Len() int { return d.sections.Len() }

func (d *Document) At(i int) *Section { return d.sections.At(i) }

func (d *Document) Names() []string { return d.sections.Names() }

// Get returns the named section or nil. It never creates.
func (d *Document) Get(name string) *Section {
	s, _ := d.sections.Get(name)
	return s
}

func (d *Document) Has(name string) bool { return d.sections.Has(name) }

// GetOrCreate returns the named section, adding an empty one when it
// is absent.
func (d *Document) GetOrCreate(name string) (*Section, error) {
	if s := d.Get(name); s != nil {
		return s, nil
	}
	s, err := NewSection(name)
	if err != nil {
		return nil, err
	}
	if err := d.sections.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Document) Add(s *Section) error {
	if s.IsDefault() {
		return fmt.Errorf("%w: the default section cannot be added", ErrBadName)
	}
	return d.sections.Add(s)
}

func (d *Document) Insert(i int, s *Section) error {
	if s.IsDefault() {
		return fmt.Errorf("%w: the default section cannot be added", ErrBadName)
	}
	return d.sections.Insert(i, s)
}

func (d *Document) Remove(name string) bool { return d.sections.Remove(name) }

func (d *Document) RemoveAt(i int) bool { return d.sections.RemoveAt(i) }

func (d *Document) IndexOf(name string) int { return d.sections.IndexOf(name) }

// PutSection adds s resolving a name collision per policy, mirroring
// the parser's duplicate-section handling. keyPolicy governs property
// collisions when policy is MergeSections. The caller hands over
// ownership of s.
func (d *Document) PutSection(s *Section, policy, keyPolicy DuplicatePolicy) error {
	if s.IsDefault() {
		return fmt.Errorf("%w: the default section cannot be added", ErrBadName)
	}
	if !d.Has(s.Name()) {
		return d.sections.Add(s)
	}
	switch policy {
	case FirstWin:
		return nil
	case LastWin:
		d.sections.Replace(s)
		return nil
	case MergeSections:
		return d.Get(s.Name()).MergeFrom(s, keyPolicy)
	case ErrorOnDuplicate:
		return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name())
	}
	return fmt.Errorf("%w: %s for sections", ErrBadPolicy, policy)
}

// CommentPrefixes returns the recognized comment prefix characters.
func (d *Document) CommentPrefixes() string { return d.prefixes }

// CommentPrefix is the prefix used when the library itself writes new
// comments.
func (d *Document) CommentPrefix() byte { return d.defaultPrefix }

// SetCommentPrefixes replaces the recognized set; def must be a
// member of prefixes.
func (d *Document) SetCommentPrefixes(prefixes string, def byte) error {
	if prefixes == "" || strings.IndexByte(prefixes, def) < 0 {
		return fmt.Errorf("%w: %q not in %q", ErrBadPrefix, string(def), prefixes)
	}
	d.prefixes = prefixes
	d.defaultPrefix = def
	return nil
}

// TrailingComments holds comment lines at the end of input that
// precede no element; the serializer re-emits them last.
func (d *Document) TrailingComments() *CommentCollection { return &d.trailing }

// ParsingErrors returns the errors recorded by a collecting parse.
func (d *Document) ParsingErrors() []*ParsingError { return d.errs }

// SetParsingErrors replaces the recorded parse errors. The parser owns
// this; editing code has no business calling it.
func (d *Document) SetParsingErrors(errs []*ParsingError) { d.errs = errs }

// Lookup resolves a dotted "section.key" path, the key being the part
// after the last dot so section names may themselves contain dots. When
// no named section matches, the whole path is tried as a default-section
// key, which keeps dotted keys before any header reachable.
func (d *Document) Lookup(path string) *Property {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if s := d.Get(path[:i]); s != nil {
			if p := s.Get(path[i+1:]); p != nil {
				return p
			}
		}
	}
	return d.defSection.Get(path)
}

func (d *Document) Clone() *Document {
	c := NewDocument()
	c.prefixes = d.prefixes
	c.defaultPrefix = d.defaultPrefix
	c.defSection = d.defSection.Clone()
	for i := 0; i < d.sections.Len(); i++ {
		_ = c.sections.Add(d.sections.At(i).Clone())
	}
	d.trailing.cloneTo(&c.trailing)
	if len(d.errs) > 0 {
		c.errs = make([]*ParsingError, len(d.errs))
		for i, e := range d.errs {
			cp := *e
			c.errs[i] = &cp
		}
	}
	return c
}
