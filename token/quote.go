package token

import (
	"errors"
	"strings"
)

var (
	// ErrUnterminated indicates a quoted value with no closing quote
	// before end of line.
	ErrUnterminated = errors.New("unterminated quote")
	// ErrIncompleteEscape indicates a trailing backslash with nothing
	// after it.
	ErrIncompleteEscape = errors.New("incomplete escape")
)

// Quote wraps v in double quotes, escaping per the INI escape table.
// ScanQuoted inverts it.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// EscapeUnquoted escapes v for emission outside quotes so that
// ScanUnquoted recovers it: backslashes, the ';'/'#' comment characters
// and the control characters of the escape table. Leading and trailing
// blanks have no unquoted escape form; callers that must preserve them
// quote instead.
func EscapeUnquoted(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case ';':
			b.WriteString(`\;`)
		case '#':
			b.WriteString(`\#`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescape maps the byte after a backslash to its value. ok is false
// for sequences outside the table; those are kept verbatim.
func unescape(c byte) (byte, bool) {
	switch c {
	case '0':
		return 0, true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case ';':
		return ';', true
	case '#':
		return '#', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	}
	return 0, false
}

// ScanQuoted scans a double-quoted value whose opening quote sits at
// line[start]. It returns the unescaped value and the index just past
// the closing quote.
func ScanQuoted(line string, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	n := len(line)
	for i < n {
		c := line[i]
		if c == '\\' {
			if i+1 >= n {
				return "", i, ErrIncompleteEscape
			}
			if e, ok := unescape(line[i+1]); ok {
				b.WriteByte(e)
			} else {
				b.WriteByte('\\')
				b.WriteByte(line[i+1])
			}
			i += 2
			continue
		}
		if c == '"' {
			return b.String(), i + 1, nil
		}
		b.WriteByte(c)
		i++
	}
	return "", n, ErrUnterminated
}

// ScanUnquoted scans an unquoted value from line[start:] up to end of
// line or the first unescaped comment prefix. It returns the value
// with trailing whitespace trimmed, plus the index of the comment
// prefix or -1 when the value runs to end of line.
func ScanUnquoted(line string, start int, prefixes string) (string, int, error) {
	var b strings.Builder
	i := start
	n := len(line)
	for i < n {
		c := line[i]
		if c == '\\' {
			if i+1 >= n {
				return "", i, ErrIncompleteEscape
			}
			if e, ok := unescape(line[i+1]); ok {
				b.WriteByte(e)
			} else {
				b.WriteByte('\\')
				b.WriteByte(line[i+1])
			}
			i += 2
			continue
		}
		if strings.IndexByte(prefixes, c) >= 0 {
			return strings.TrimRight(b.String(), " \t"), i, nil
		}
		b.WriteByte(c)
		i++
	}
	return strings.TrimRight(b.String(), " \t"), -1, nil
}
