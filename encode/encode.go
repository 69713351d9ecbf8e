package encode

import (
	"bufio"
	"io"
	"strings"

	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/token"
)

// EncState carries the serializer configuration for one Encode call.
type EncState struct {
	blankBetween bool
	prefixes     string
	Color        *Colors
}

// Encode writes doc as INI text: the default section first with no
// header line, then each named section in order, then the document's
// trailing comments.
func Encode(doc *ir.Document, w io.Writer, opts ...Option) error {
	es := &EncState{blankBetween: true, prefixes: doc.CommentPrefixes()}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	first := true
	def := doc.DefaultSection()
	if def.Len() > 0 || def.PreComments().Len() > 0 {
		encodeSection(def, bw, es)
		first = false
	}
	for i := 0; i < doc.Len(); i++ {
		if !first && es.blankBetween {
			bw.WriteByte('\n')
		}
		encodeSection(doc.At(i), bw, es)
		first = false
	}
	if tc := doc.TrailingComments(); tc.Len() > 0 {
		if !first && es.blankBetween {
			bw.WriteByte('\n')
		}
		writeComments(tc, bw, es)
	}
	return bw.Flush()
}

func encodeSection(s *ir.Section, w *bufio.Writer, es *EncState) {
	writeComments(s.PreComments(), w, es)
	if !s.IsDefault() {
		header := "[" + s.Name() + "]"
		if es.Color != nil {
			header = es.Color.Section(header)
		}
		w.WriteString(header)
		writeInline(s.InlineComment(), w, es)
		w.WriteByte('\n')
	}
	for i := 0; i < s.Len(); i++ {
		encodeProperty(s.At(i), w, es)
	}
}

func encodeProperty(p *ir.Property, w *bufio.Writer, es *EncState) {
	writeComments(p.PreComments(), w, es)
	key, val := p.Name(), p.Value()
	if p.IsQuoted() || !unquotedSafe(val, es.prefixes) {
		val = token.Quote(val)
	} else {
		val = token.EscapeUnquoted(val)
	}
	if es.Color != nil {
		key = es.Color.Key(key)
		val = es.Color.Value(val)
	}
	w.WriteString(key)
	w.WriteByte('=')
	w.WriteString(val)
	writeInline(p.InlineComment(), w, es)
	w.WriteByte('\n')
}

// unquotedSafe reports whether val survives an unquoted round trip:
// the scanner trims blanks at either end, and comment prefixes outside
// the ';'/'#' the escape table covers cannot be escaped.
func unquotedSafe(val, prefixes string) bool {
	if val == "" {
		return true
	}
	if val[0] == ' ' || val[0] == '\t' ||
		val[len(val)-1] == ' ' || val[len(val)-1] == '\t' {
		return false
	}
	for i := 0; i < len(prefixes); i++ {
		c := prefixes[i]
		if c == ';' || c == '#' {
			continue
		}
		if strings.IndexByte(val, c) >= 0 {
			return false
		}
	}
	return true
}

func writeComments(cc *ir.CommentCollection, w *bufio.Writer, es *EncState) {
	for i := 0; i < cc.Len(); i++ {
		line := cc.At(i).String()
		if es.Color != nil {
			line = es.Color.Comment(line)
		}
		w.WriteString(line)
		w.WriteByte('\n')
	}
}

func writeInline(c *ir.Comment, w *bufio.Writer, es *EncState) {
	if c == nil {
		return
	}
	s := c.String()
	if es.Color != nil {
		s = es.Color.Comment(s)
	}
	w.WriteByte(' ')
	w.WriteString(s)
}
