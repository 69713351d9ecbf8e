package ir

import (
	"fmt"
	"strings"
)

// element is what Section and Property share: a validated, immutable
// name plus comment metadata.
type element struct {
	name   string
	pre    CommentCollection
	inline *Comment
}

// CheckName reports whether name is usable as a section or property
// name: non-empty, no surrounding whitespace, no line terminator.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrBadName)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q has leading or trailing whitespace", ErrBadName, name)
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q contains a line terminator", ErrBadName, name)
	}
	return nil
}

func (e *element) Name() string { return e.name }

// PreComments returns the comment lines preceding the element.
func (e *element) PreComments() *CommentCollection { return &e.pre }

// InlineComment returns the comment on the element's own line, or nil.
func (e *element) InlineComment() *Comment { return e.inline }

// SetInlineComment stores a clone of c; nil removes the comment.
func (e *element) SetInlineComment(c *Comment) {
	if c == nil {
		e.inline = nil
		return
	}
	e.inline = c.Clone()
}

func (e *element) cloneTo(dst *element) {
	dst.name = e.name
	e.pre.cloneTo(&dst.pre)
	dst.inline = nil
	if e.inline != nil {
		dst.inline = e.inline.Clone()
	}
}
