package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Scalar enumerates the types with conversion fast paths.
type Scalar interface {
	bool | int | int64 | uint | uint64 | float32 | float64 | string
}

// Value converts the property's string value to T. Boolean conversion
// accepts "1"/"0"/"yes"/"no" in addition to "true"/"false",
// case-insensitively. Failures wrap ErrConvert.
func Value[T Scalar](p *Property) (T, error) {
	var zero T
	v, err := convert(p.value, any(zero))
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// TryValue is Value with the error collapsed into a bool.
func TryValue[T Scalar](p *Property) (T, bool) {
	v, err := Value[T](p)
	return v, err == nil
}

// ValueOr is Value falling back to def on conversion failure.
func ValueOr[T Scalar](p *Property, def T) T {
	v, err := Value[T](p)
	if err != nil {
		return def
	}
	return v
}

func convert(s string, kind any) (any, error) {
	t := strings.TrimSpace(s)
	switch kind.(type) {
	case string:
		return s, nil
	case bool:
		switch strings.ToLower(t) {
		case "1", "yes", "true":
			return true, nil
		case "0", "no", "false":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q to bool", ErrConvert, s)
	case int:
		n, err := strconv.ParseInt(t, 10, 0)
		if err != nil {
			return nil, convErr(s, "int", err)
		}
		return int(n), nil
	case int64:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, convErr(s, "int64", err)
		}
		return n, nil
	case uint:
		n, err := strconv.ParseUint(t, 10, 0)
		if err != nil {
			return nil, convErr(s, "uint", err)
		}
		return uint(n), nil
	case uint64:
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return nil, convErr(s, "uint64", err)
		}
		return n, nil
	case float32:
		f, err := strconv.ParseFloat(t, 32)
		if err != nil {
			return nil, convErr(s, "float32", err)
		}
		return float32(f), nil
	case float64:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, convErr(s, "float64", err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrConvert, kind)
}

func convErr(s, typ string, err error) error {
	return fmt.Errorf("%w: %q to %s: %v", ErrConvert, s, typ, err)
}

// ValueArray parses the property's value as an array literal of the
// form {a, b, "c,d"}. Elements containing ',', '{', '}', '"' or a
// space arrive quoted; quotes and backslashes inside quoted elements
// are backslash-escaped.
func (p *Property) ValueArray() ([]string, error) {
	return parseArray(p.value)
}

// SetValueArray encodes items as an array literal, quoting the
// elements that need it.
func (p *Property) SetValueArray(items []string) {
	p.value = encodeArray(items)
}

func arrayNeedsQuote(s string) bool {
	return s == "" || strings.ContainsAny(s, `,{}" `)
}

func encodeArray(items []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		if !arrayNeedsQuote(it) {
			b.WriteString(it)
			continue
		}
		b.WriteByte('"')
		for j := 0; j < len(it); j++ {
			switch it[j] {
			case '"', '\\':
				b.WriteByte('\\')
			}
			b.WriteByte(it[j])
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

func parseArray(v string) ([]string, error) {
	s := strings.TrimSpace(v)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("%w: %q", ErrBadArray, v)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	var items []string
	i, n := 0, len(body)
	for i <= n {
		for i < n && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i < n && body[i] == '"' {
			item, next, err := parseQuotedItem(body, i, v)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if next >= n {
				break
			}
			i = next + 1 // consume the comma
			continue
		}
		j := strings.IndexByte(body[i:], ',')
		if j < 0 {
			items = append(items, strings.TrimSpace(body[i:]))
			break
		}
		items = append(items, strings.TrimSpace(body[i:i+j]))
		i += j + 1
	}
	return items, nil
}

// parseQuotedItem scans the quoted element starting at body[i] and
// returns it with the index of the separating comma (or end of body).
func parseQuotedItem(body string, i int, whole string) (string, int, error) {
	var b strings.Builder
	i++ // opening quote
	n := len(body)
	closed := false
	for i < n {
		c := body[i]
		if c == '\\' && i+1 < n {
			b.WriteByte(body[i+1])
			i += 2
			continue
		}
		if c == '"' {
			closed = true
			i++
			break
		}
		b.WriteByte(c)
		i++
	}
	if !closed {
		return "", 0, fmt.Errorf("%w: unterminated quote in %q", ErrBadArray, whole)
	}
	for i < n && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	if i < n && body[i] != ',' {
		return "", 0, fmt.Errorf("%w: content after quoted element in %q", ErrBadArray, whole)
	}
	return b.String(), i, nil
}
