package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedValues(t *testing.T) {
	t.Parallel()

	p := mustProp(t, "k", "42")
	n, err := Value[int](p)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	n64, err := Value[int64](p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n64)
	f, err := Value[float64](p)
	require.NoError(t, err)
	assert.Equal(t, 42.0, f)
	s, err := Value[string](p)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	p.SetValue("not a number")
	_, err = Value[int](p)
	require.ErrorIs(t, err, ErrConvert)

	v, ok := TryValue[int](p)
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 7, ValueOr(p, 7))
}

func TestBoolValues(t *testing.T) {
	t.Parallel()

	truthy := []string{"1", "yes", "YES", "true", "True"}
	falsy := []string{"0", "no", "NO", "false", "False"}
	p := mustProp(t, "k", "")
	for _, v := range truthy {
		p.SetValue(v)
		b, err := Value[bool](p)
		require.NoError(t, err, "value %q", v)
		assert.True(t, b, "value %q", v)
	}
	for _, v := range falsy {
		p.SetValue(v)
		b, err := Value[bool](p)
		require.NoError(t, err, "value %q", v)
		assert.False(t, b, "value %q", v)
	}
	p.SetValue("maybe")
	_, err := Value[bool](p)
	require.ErrorIs(t, err, ErrConvert)
}

func TestArrayRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []string
		enc   string
	}{
		{"plain", []string{"a", "b", "c"}, "{a, b, c}"},
		{"comma", []string{"a", "c,d"}, `{a, "c,d"}`},
		{"space", []string{"one two"}, `{"one two"}`},
		{"brace", []string{"x{y}"}, `{"x{y}"}`},
		{"quote", []string{`say "hi"`}, `{"say \"hi\""}`},
		{"empty element", []string{"a", "", "b"}, `{a, "", b}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProp(t, "k", "")
			p.SetValueArray(tt.items)
			assert.Equal(t, tt.enc, p.Value())
			back, err := p.ValueArray()
			require.NoError(t, err)
			if d := cmp.Diff(tt.items, back); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestArrayParseErrors(t *testing.T) {
	t.Parallel()

	p := mustProp(t, "k", "not an array")
	_, err := p.ValueArray()
	require.ErrorIs(t, err, ErrBadArray)

	p.SetValue(`{"unterminated}`)
	_, err = p.ValueArray()
	require.ErrorIs(t, err, ErrBadArray)

	p.SetValue(`{"a" junk, b}`)
	_, err = p.ValueArray()
	require.ErrorIs(t, err, ErrBadArray)

	p.SetValue("{}")
	items, err := p.ValueArray()
	require.NoError(t, err)
	assert.Empty(t, items)
}
