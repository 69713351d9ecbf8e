package parse

import "github.com/ini-format/go-ini/ir"

type parseOpts struct {
	prefixes      string
	defaultPrefix byte
	keyPolicy     ir.DuplicatePolicy
	sectionPolicy ir.DuplicatePolicy
	collect       bool
	onError       func(*ir.ParsingError)
}

type Option func(*parseOpts)

// CommentPrefixes sets the recognized comment prefix characters and
// the one the library writes new comments with; def must be a member
// of prefixes.
func CommentPrefixes(prefixes string, def byte) Option {
	return func(o *parseOpts) {
		o.prefixes = prefixes
		o.defaultPrefix = def
	}
}

// KeyPolicy sets how duplicate keys within one section are resolved.
// MergeSections is not a key policy. Default: LastWin.
func KeyPolicy(p ir.DuplicatePolicy) Option {
	return func(o *parseOpts) { o.keyPolicy = p }
}

// SectionPolicy sets how duplicate section headers are resolved.
// Default: MergeSections.
func SectionPolicy(p ir.DuplicatePolicy) Option {
	return func(o *parseOpts) { o.sectionPolicy = p }
}

// CollectErrors keeps parsing past malformed lines, recording them on
// the returned document, instead of aborting at the first one.
func CollectErrors(v bool) Option {
	return func(o *parseOpts) { o.collect = v }
}

// OnError registers a callback invoked once per detected error, in
// input order, before the error is recorded or returned.
func OnError(f func(*ir.ParsingError)) Option {
	return func(o *parseOpts) { o.onError = f }
}
