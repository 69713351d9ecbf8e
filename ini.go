package ini

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/ini-format/go-ini/encode"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/parse"
)

// Load reads and parses an INI document from r. enc is the text
// encoding of the stream; nil means UTF-8.
func Load(r io.Reader, enc encoding.Encoding, opts ...parse.Option) (*ir.Document, error) {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return parse.Parse(data, opts...)
}

// LoadFile is Load over the named file.
func LoadFile(path string, enc encoding.Encoding, opts ...parse.Option) (*ir.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, enc, opts...)
}

// LoadFileContext is LoadFile honoring ctx around the file I/O.
// Parsing itself is synchronous; the I/O is the only suspension point.
func LoadFileContext(ctx context.Context, path string, enc encoding.Encoding, opts ...parse.Option) (*ir.Document, error) {
	type result struct {
		doc *ir.Document
		err error
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch := make(chan result, 1)
	go func() {
		doc, err := LoadFile(path, enc, opts...)
		ch <- result{doc, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.doc, res.err
	}
}

// Save serializes doc to w in the given encoding; nil means UTF-8.
func Save(doc *ir.Document, w io.Writer, enc encoding.Encoding, opts ...encode.Option) error {
	if enc == nil {
		return encode.Encode(doc, w, opts...)
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	if err := encode.Encode(doc, tw, opts...); err != nil {
		return err
	}
	return tw.Close()
}

// SaveFile is Save over the named file, truncating it.
func SaveFile(doc *ir.Document, path string, enc encoding.Encoding, opts ...encode.Option) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := Save(doc, f, enc, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveFileContext mirrors LoadFileContext for writes.
func SaveFileContext(ctx context.Context, doc *ir.Document, path string, enc encoding.Encoding, opts ...encode.Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch := make(chan error, 1)
	go func() {
		ch <- SaveFile(doc, path, enc, opts...)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-ch:
		return err
	}
}
