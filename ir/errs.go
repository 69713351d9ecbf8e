package ir

import "errors"

var (
	// ErrDuplicateName indicates a case-insensitive name collision on
	// add or insert.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNotFound indicates a named element absent from its container.
	ErrNotFound = errors.New("not found")
	// ErrIndexRange indicates an index outside the container's bounds.
	ErrIndexRange = errors.New("index out of range")
	// ErrBadName indicates an element name that is empty, padded with
	// whitespace or contains a line terminator.
	ErrBadName = errors.New("invalid name")
	// ErrBadComment indicates comment text containing a line terminator.
	ErrBadComment = errors.New("invalid comment")
	// ErrConvert indicates a property value that cannot be converted to
	// the requested type.
	ErrConvert = errors.New("cannot convert value")
	// ErrBadPolicy indicates a duplicate policy not applicable to the
	// operation.
	ErrBadPolicy = errors.New("invalid duplicate policy")
	// ErrBadPrefix indicates a comment prefix outside the document's
	// recognized set.
	ErrBadPrefix = errors.New("invalid comment prefix")
	// ErrBadArray indicates a value that is not a well-formed array
	// literal.
	ErrBadArray = errors.New("invalid array value")
)
