package encode

import (
	"strings"

	"github.com/ini-format/go-ini/ir"
)

// MustString renders doc to a string, panicking on writer failure.
// Writing to a strings.Builder cannot fail, so this is safe for tests
// and debug output.
func MustString(doc *ir.Document, opts ...Option) string {
	var b strings.Builder
	if err := Encode(doc, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}
