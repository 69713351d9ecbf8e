package ir

import "fmt"

// DuplicatePolicy selects how name collisions are resolved during
// parsing and merging.
type DuplicatePolicy int

const (
	// FirstWin keeps the existing element and discards the newcomer.
	FirstWin DuplicatePolicy = iota
	// LastWin replaces the existing element in place, keeping its
	// position.
	LastWin
	// MergeSections folds a colliding section's properties into the
	// existing section. Valid for sections only.
	MergeSections
	// ErrorOnDuplicate aborts the whole operation on any collision.
	ErrorOnDuplicate
)

func (p DuplicatePolicy) String() string {
	switch p {
	case FirstWin:
		return "first-win"
	case LastWin:
		return "last-win"
	case MergeSections:
		return "merge"
	case ErrorOnDuplicate:
		return "error"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Section is a named, ordered collection of properties whose names are
// unique case-insensitively.
type Section struct {
	element
	props ordered[*Property]
}

func NewSection(name string) (*Section, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	return &Section{element: element{name: name}}, nil
}

func newDefaultSection() *Section {
	return &Section{}
}

// IsDefault reports whether s is a document's default section, the
// reserved unnamed container for properties before any header.
func (s *Section) IsDefault() bool { return s.name == "" }

func (s *Section) Len() int { return s.props.Len() }

func (s *Section) At(i int) *Property { return s.props.At(i) }

func (s *Section) Names() []string { return s.props.Names() }

// Get returns the named property or nil. It never creates.
func (s *Section) Get(name string) *Property {
	p, _ := s.props.Get(name)
	return p
}

func (s *Section) Has(name string) bool { return s.props.Has(name) }

// GetOrCreate returns the named property, adding an empty one when it
// is absent.
func (s *Section) GetOrCreate(name string) (*Property, error) {
	if p := s.Get(name); p != nil {
		return p, nil
	}
	p, err := NewProperty(name)
	if err != nil {
		return nil, err
	}
	if err := s.props.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Section) Add(p *Property) error { return s.props.Add(p) }

func (s *Section) Insert(i int, p *Property) error { return s.props.Insert(i, p) }

func (s *Section) Remove(name string) bool { return s.props.Remove(name) }

func (s *Section) RemoveAt(i int) bool { return s.props.RemoveAt(i) }

func (s *Section) IndexOf(name string) int { return s.props.IndexOf(name) }

func (s *Section) Clear() { s.props.Clear() }

// Set assigns value to the named property, creating it if needed.
func (s *Section) Set(name, value string) (*Property, error) {
	p, err := s.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	p.SetValue(value)
	return p, nil
}

// PutProperty adds p, resolving a name collision per policy. LastWin
// replaces the existing property in place, comments and all. The
// caller hands over ownership of p; clone first when in doubt.
func (s *Section) PutProperty(p *Property, policy DuplicatePolicy) error {
	if !s.Has(p.Name()) {
		return s.props.Add(p)
	}
	switch policy {
	case FirstWin:
		return nil
	case LastWin:
		s.props.Replace(p)
		return nil
	case ErrorOnDuplicate:
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name())
	}
	return fmt.Errorf("%w: %s for properties", ErrBadPolicy, policy)
}

// MergeFrom folds other's properties into s under the given policy.
// other is cloned first, so the caller's section is never mutated or
// aliased. Under ErrorOnDuplicate any collision aborts before s is
// touched at all.
func (s *Section) MergeFrom(other *Section, policy DuplicatePolicy) error {
	if policy == MergeSections {
		return fmt.Errorf("%w: %s for properties", ErrBadPolicy, policy)
	}
	src := other.Clone()
	if policy == ErrorOnDuplicate {
		for i := 0; i < src.Len(); i++ {
			if s.Has(src.At(i).Name()) {
				return fmt.Errorf("%w: %q", ErrDuplicateName, src.At(i).Name())
			}
		}
	}
	for i := 0; i < src.Len(); i++ {
		if err := s.PutProperty(src.At(i), policy); err != nil {
			return err
		}
	}
	return nil
}

func (s *Section) Clone() *Section {
	d := &Section{}
	s.element.cloneTo(&d.element)
	for i := 0; i < s.props.Len(); i++ {
		// names are unique in the source, Add cannot fail
		_ = d.props.Add(s.props.At(i).Clone())
	}
	return d
}
