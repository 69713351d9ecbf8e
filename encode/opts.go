package encode

type Option func(*EncState)

// BlankBetweenSections controls the blank line emitted between
// sections. Default: on. It affects only readability; blank lines are
// structurally invisible to the parser.
func BlankBetweenSections(v bool) Option {
	return func(es *EncState) { es.blankBetween = v }
}

// EncodeColors renders the output with terminal colors.
func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c }
}
