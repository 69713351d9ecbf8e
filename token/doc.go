// Package token provides the low-level text scanning shared by the
// parser and serializer: quoted-value escaping and unescaping, inline
// comment detection in unquoted values, and physical line
// classification.
package token
