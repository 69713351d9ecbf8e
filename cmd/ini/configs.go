package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ini-format/go-ini/encode"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='force colored output'"`
	Strict bool `cli:"name=strict desc='abort on the first malformed line'"`

	Prefixes      string `cli:"name=prefixes desc='recognized comment prefix characters'"`
	KeyPolicy     string `cli:"name=key-policy desc='duplicate key policy: first, last, error'"`
	SectionPolicy string `cli:"name=section-policy desc='duplicate section policy: first, last, merge, error'"`
	EncodingName  string `cli:"name=encoding desc='text encoding by IANA name (default UTF-8)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encoding() (encoding.Encoding, error) {
	if cfg.EncodingName == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(cfg.EncodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", cli.ErrUsage, cfg.EncodingName)
	}
	return enc, nil
}

func (cfg *MainConfig) parseOpts() ([]parse.Option, error) {
	res := []parse.Option{
		parse.CollectErrors(!cfg.Strict),
	}
	if cfg.Prefixes != "" {
		res = append(res, parse.CommentPrefixes(cfg.Prefixes, cfg.Prefixes[0]))
	}
	if cfg.KeyPolicy != "" {
		p, err := parsePolicy(cfg.KeyPolicy)
		if err != nil {
			return nil, err
		}
		res = append(res, parse.KeyPolicy(p))
	}
	if cfg.SectionPolicy != "" {
		p, err := parsePolicy(cfg.SectionPolicy)
		if err != nil {
			return nil, err
		}
		res = append(res, parse.SectionPolicy(p))
	}
	return res, nil
}

func parsePolicy(v string) (ir.DuplicatePolicy, error) {
	switch v {
	case "first":
		return ir.FirstWin, nil
	case "last":
		return ir.LastWin, nil
	case "merge":
		return ir.MergeSections, nil
	case "error":
		return ir.ErrorOnDuplicate, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", cli.ErrUsage, v)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type LintConfig struct {
	*MainConfig
	Lint *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Quote bool `cli:"name=quote desc='write the value quoted'"`
	Set   *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig
	AddSections      bool `cli:"name=add-sections desc='apply added sections'"`
	RemoveSections   bool `cli:"name=remove-sections desc='apply removed sections'"`
	AddProperties    bool `cli:"name=add-props desc='apply added properties'"`
	RemoveProperties bool `cli:"name=remove-props desc='apply removed properties'"`
	ModifyProperties bool `cli:"name=mod-props desc='apply modified properties'"`

	Merge *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To      string `cli:"name=to desc='output format: yaml, json'"`
	Convert *cli.Command
}
