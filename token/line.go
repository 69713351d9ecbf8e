package token

import "strings"

// Kind classifies a physical input line by its first non-whitespace
// byte.
type Kind int

const (
	Blank Kind = iota
	CommentLine
	SectionLine
	KeyValueLine
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case CommentLine:
		return "comment"
	case SectionLine:
		return "section"
	case KeyValueLine:
		return "key-value"
	}
	return "unknown"
}

// Classify reports the kind of line and the index of its first
// non-whitespace byte (-1 for blank lines).
func Classify(line, prefixes string) (Kind, int) {
	i := IndexNonSpace(line, 0)
	if i < 0 {
		return Blank, -1
	}
	switch c := line[i]; {
	case strings.IndexByte(prefixes, c) >= 0:
		return CommentLine, i
	case c == '[':
		return SectionLine, i
	}
	return KeyValueLine, i
}

// IndexNonSpace returns the index of the first byte at or after start
// that is neither a space nor a tab, or -1.
func IndexNonSpace(s string, start int) int {
	for i := start; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return -1
}
