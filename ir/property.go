package ir

// Property is a key/value pair within a section. The value is always
// held as a string; typed views are projections over it (see Value,
// TryValue, ValueOr) and never store parsed state.
type Property struct {
	element
	value  string
	quoted bool
}

func NewProperty(name string) (*Property, error) {
	return NewPropertyValue(name, "")
}

func NewPropertyValue(name, value string) (*Property, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	return &Property{element: element{name: name}, value: value}, nil
}

func (p *Property) Value() string { return p.value }

func (p *Property) SetValue(v string) { p.value = v }

// IsQuoted reports whether the serializer writes the value in double
// quotes. The parser records it on load; nothing flips it implicitly.
func (p *Property) IsQuoted() bool { return p.quoted }

func (p *Property) SetQuoted(v bool) { p.quoted = v }

func (p *Property) Clone() *Property {
	d := &Property{value: p.value, quoted: p.quoted}
	p.element.cloneTo(&d.element)
	return d
}
