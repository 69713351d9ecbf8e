package ir

import (
	"fmt"
	"strings"
)

// Comment is a single comment line: a one-character prefix such as ';'
// or '#' plus the text after it. The text never contains a line
// terminator; a multi-line comment block is a CommentCollection.
type Comment struct {
	prefix byte
	value  string
}

func NewComment(prefix byte, value string) (*Comment, error) {
	if err := checkCommentText(value); err != nil {
		return nil, err
	}
	return &Comment{prefix: prefix, value: value}, nil
}

func (c *Comment) Prefix() byte { return c.prefix }

func (c *Comment) Value() string { return c.value }

func (c *Comment) SetValue(v string) error {
	if err := checkCommentText(v); err != nil {
		return err
	}
	c.value = v
	return nil
}

func (c *Comment) SetPrefix(p byte) { c.prefix = p }

func (c *Comment) Clone() *Comment {
	d := *c
	return &d
}

// String renders the comment as it appears on its own line, prefix
// included.
func (c *Comment) String() string {
	return string(c.prefix) + c.value
}

func checkCommentText(v string) error {
	if strings.ContainsAny(v, "\r\n") {
		return fmt.Errorf("%w: text contains a line terminator", ErrBadComment)
	}
	return nil
}

// CommentCollection is the ordered run of comment lines immediately
// preceding an element.
type CommentCollection struct {
	list []*Comment
}

func (cc *CommentCollection) Len() int {
	if cc == nil {
		return 0
	}
	return len(cc.list)
}

func (cc *CommentCollection) At(i int) *Comment { return cc.list[i] }

// Append stores a clone of c so later mutation through the caller's
// reference is not visible here.
func (cc *CommentCollection) Append(c *Comment) {
	cc.list = append(cc.list, c.Clone())
}

func (cc *CommentCollection) Insert(i int, c *Comment) error {
	if i < 0 || i > len(cc.list) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	cc.list = append(cc.list[:i], append([]*Comment{c.Clone()}, cc.list[i:]...)...)
	return nil
}

func (cc *CommentCollection) RemoveAt(i int) bool {
	if i < 0 || i >= len(cc.list) {
		return false
	}
	cc.list = append(cc.list[:i], cc.list[i+1:]...)
	return true
}

func (cc *CommentCollection) Clear() { cc.list = nil }

// Text joins the comment values into a single blob, one comment per
// line. SetText inverts it losslessly.
func (cc *CommentCollection) Text() string {
	if cc.Len() == 0 {
		return ""
	}
	vals := make([]string, len(cc.list))
	for i, c := range cc.list {
		vals[i] = c.value
	}
	return strings.Join(vals, "\n")
}

// SetText replaces the collection with one comment per line of text,
// all using the given prefix. The translation is all-or-nothing: if
// any derived line is invalid the collection is left untouched. Empty
// text clears the collection.
func (cc *CommentCollection) SetText(text string, prefix byte) error {
	if text == "" {
		cc.list = nil
		return nil
	}
	lines := strings.Split(text, "\n")
	next := make([]*Comment, len(lines))
	for i, ln := range lines {
		c, err := NewComment(prefix, ln)
		if err != nil {
			return err
		}
		next[i] = c
	}
	cc.list = next
	return nil
}

func (cc *CommentCollection) Clone() *CommentCollection {
	d := &CommentCollection{}
	cc.cloneTo(d)
	return d
}

func (cc *CommentCollection) cloneTo(dst *CommentCollection) {
	if cc.Len() == 0 {
		dst.list = nil
		return
	}
	dst.list = make([]*Comment, len(cc.list))
	for i, c := range cc.list {
		dst.list[i] = c.Clone()
	}
}
