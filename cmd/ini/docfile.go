package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	ini "github.com/ini-format/go-ini"
	"github.com/ini-format/go-ini/ir"
)

// getDocFile loads one INI document from a path, "-" meaning stdin,
// honoring the main config's encoding and parse options.
func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	enc, err := cfg.encoding()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.parseOpts()
	if err != nil {
		return nil, err
	}
	var r io.Reader
	if path == "-" {
		r = cc.In
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	doc, err := ini.Load(r, enc, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return doc, nil
}

// orStdin substitutes reading stdin when no file arguments are given.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
