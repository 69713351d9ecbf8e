// Package ir holds the in-memory representation of INI documents:
// documents, sections, properties and the comment metadata attached to
// them. The representation preserves what most INI readers discard —
// comment placement, value quoting and element order — so a document
// can round-trip through parse and encode without losing its shape.
//
// Containers key their elements case-insensitively and preserve
// insertion order. Lookups never create; GetOrCreate is the explicit
// creating accessor.
//
// Entities are deep-cloned whenever they move between owners. A clone
// shares no Comment or Property instance with its source.
package ir
