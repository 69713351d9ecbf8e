package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/parse"
)

func buildDoc(t *testing.T) *ir.Document {
	t.Helper()
	doc := ir.NewDocument()

	def := doc.DefaultSection()
	_, err := def.Set("top", "level")
	require.NoError(t, err)

	srv, err := doc.GetOrCreate("server")
	require.NoError(t, err)
	c, err := ir.NewComment(';', " main endpoint")
	require.NoError(t, err)
	srv.PreComments().Append(c)
	_, err = srv.Set("host", "localhost")
	require.NoError(t, err)
	port, err := srv.Set("port", "8080")
	require.NoError(t, err)
	ic, err := ir.NewComment('#', " tcp")
	require.NoError(t, err)
	port.SetInlineComment(ic)

	cli, err := doc.GetOrCreate("client")
	require.NoError(t, err)
	q, err := cli.Set("greeting", `hello; "world"`)
	require.NoError(t, err)
	q.SetQuoted(true)
	return doc
}

func TestEncode(t *testing.T) {
	t.Parallel()
	want := `top=level

; main endpoint
[server]
host=localhost
port=8080 # tcp

[client]
greeting="hello; \"world\""
`
	assert.Equal(t, want, MustString(buildDoc(t)))
}

func TestEncodeNoBlankBetween(t *testing.T) {
	t.Parallel()
	want := `top=level
; main endpoint
[server]
host=localhost
port=8080 # tcp
[client]
greeting="hello; \"world\""
`
	assert.Equal(t, want, MustString(buildDoc(t), BlankBetweenSections(false)))
}

func TestEncodeEmptyDocument(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", MustString(ir.NewDocument()))
}

func TestEncodeTrailingComments(t *testing.T) {
	t.Parallel()
	doc := ir.NewDocument()
	_, err := doc.DefaultSection().Set("a", "1")
	require.NoError(t, err)
	c, err := ir.NewComment(';', " goodbye")
	require.NoError(t, err)
	doc.TrailingComments().Append(c)
	assert.Equal(t, "a=1\n\n; goodbye\n", MustString(doc))
}

func TestEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()
	doc := buildDoc(t)
	text := MustString(doc)

	back, err := parse.ParseString(text)
	require.NoError(t, err)

	assert.Equal(t, doc.Names(), back.Names())
	assert.Equal(t, "level", back.DefaultSection().Get("top").Value())
	srv := back.Get("server")
	require.NotNil(t, srv)
	require.Equal(t, 1, srv.PreComments().Len())
	assert.Equal(t, " main endpoint", srv.PreComments().At(0).Value())
	require.NotNil(t, srv.Get("port").InlineComment())
	assert.Equal(t, byte('#'), srv.Get("port").InlineComment().Prefix())

	g := back.Get("client").Get("greeting")
	require.NotNil(t, g)
	assert.True(t, g.IsQuoted())
	assert.Equal(t, `hello; "world"`, g.Value())
}

// Unquoted values pass through the same escape decoding on the way in
// that quoted ones do, so the encoder must re-escape them on the way
// out or the value bleeds into an inline comment on re-parse.
func TestEncodeUnquotedEscapes(t *testing.T) {
	t.Parallel()
	doc, err := parse.ParseString(`key=a \; b ; real comment` + "\n")
	require.NoError(t, err)
	prop := doc.DefaultSection().Get("key")
	require.Equal(t, "a ; b", prop.Value())

	text := MustString(doc)
	assert.Equal(t, `key=a \; b ; real comment`+"\n", text)

	back, err := parse.ParseString(text)
	require.NoError(t, err)
	p := back.DefaultSection().Get("key")
	assert.Equal(t, "a ; b", p.Value())
	require.NotNil(t, p.InlineComment())
	assert.Equal(t, " real comment", p.InlineComment().Value())
}

func TestEncodeUnquotedBackslash(t *testing.T) {
	t.Parallel()
	doc, err := parse.ParseString(`key=a\\b` + "\n")
	require.NoError(t, err)
	require.Equal(t, `a\b`, doc.DefaultSection().Get("key").Value())

	text := MustString(doc)
	assert.Equal(t, `key=a\\b`+"\n", text)

	back, err := parse.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, `a\b`, back.DefaultSection().Get("key").Value())
}

// Values with no unquoted representation come out quoted instead: the
// scanner trims blanks at either end, and prefix characters outside the
// escape table cannot be escaped.
func TestEncodeQuotesUnrepresentableValues(t *testing.T) {
	t.Parallel()
	doc := ir.NewDocument()
	_, err := doc.DefaultSection().Set("pad", "  spaced  ")
	require.NoError(t, err)
	assert.Equal(t, "pad=\"  spaced  \"\n", MustString(doc))

	back, err := parse.ParseString(MustString(doc))
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", back.DefaultSection().Get("pad").Value())

	pct := ir.NewDocument()
	require.NoError(t, pct.SetCommentPrefixes("%", '%'))
	_, err = pct.DefaultSection().Set("sale", "50% off")
	require.NoError(t, err)
	assert.Equal(t, "sale=\"50% off\"\n", MustString(pct))

	back, err = parse.ParseString(MustString(pct), parse.CommentPrefixes("%", '%'))
	require.NoError(t, err)
	assert.Equal(t, "50% off", back.DefaultSection().Get("sale").Value())
}

func TestEncodeNewlineValue(t *testing.T) {
	t.Parallel()
	doc := ir.NewDocument()
	_, err := doc.DefaultSection().Set("multi", "a\nb")
	require.NoError(t, err)
	text := MustString(doc)
	assert.Equal(t, `multi=a\nb`+"\n", text)

	back, err := parse.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", back.DefaultSection().Get("multi").Value())
}

// A second parse of an encoded document must yield the same text: every
// formatting decision the encoder makes is representable in the model.
func TestEncodeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"key=value\n",
		"[s]\n; c\nkey=\"quoted ; value\" ; inline\n",
		"; floating\n\n[a]\nx=1\n\n[b]\ny=2\n\n; tail\n",
		`key=a \; b ; real comment` + "\n",
		`key=a\\b` + "\n",
		"key=value   \n",
		`key=tab\there` + "\n",
	}
	for _, in := range inputs {
		doc, err := parse.ParseString(in)
		require.NoError(t, err)
		once := MustString(doc)
		doc2, err := parse.ParseString(once)
		require.NoError(t, err)
		assert.Equal(t, once, MustString(doc2), "input %q", in)
	}
}
