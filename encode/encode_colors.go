package encode

import "github.com/fatih/color"

// Colors maps document parts to sprintf-style colorizers.
type Colors struct {
	SectionColor func(format string, a ...interface{}) string
	KeyColor     func(format string, a ...interface{}) string
	ValueColor   func(format string, a ...interface{}) string
	CommentColor func(format string, a ...interface{}) string
}

func NewColors() *Colors {
	return &Colors{
		SectionColor: color.New(color.FgYellow, color.Bold).SprintfFunc(),
		KeyColor:     color.RGB(196, 96, 16).SprintfFunc(),
		ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
		CommentColor: color.BlueString,
	}
}

func (c *Colors) Section(s string) string { return c.SectionColor("%s", s) }
func (c *Colors) Key(s string) string     { return c.KeyColor("%s", s) }
func (c *Colors) Value(s string) string   { return c.ValueColor("%s", s) }
func (c *Colors) Comment(s string) string { return c.CommentColor("%s", s) }
