package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/ini-format/go-ini/ir"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	to := cfg.To
	if to == "" {
		to = "yaml"
	}
	for _, arg := range orStdin(args) {
		doc, err := getDocFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		m := docMap(doc)
		switch to {
		case "yaml", "y":
			d, err := yaml.Marshal(m)
			if err != nil {
				return fmt.Errorf("error converting %q: %w", arg, err)
			}
			cc.Out.Write(d)
		case "json", "j":
			d, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return fmt.Errorf("error converting %q: %w", arg, err)
			}
			cc.Out.Write(d)
			fmt.Fprintln(cc.Out)
		default:
			return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, to)
		}
	}
	return nil
}

// docMap flattens a document into nested maps: default-section
// properties at the top level, each named section as a nested map.
// Comments and quoting are presentation details and do not survive
// conversion.
func docMap(doc *ir.Document) map[string]any {
	m := map[string]any{}
	def := doc.DefaultSection()
	for i := 0; i < def.Len(); i++ {
		p := def.At(i)
		m[p.Name()] = p.Value()
	}
	for i := 0; i < doc.Len(); i++ {
		sec := doc.At(i)
		sm := map[string]any{}
		for j := 0; j < sec.Len(); j++ {
			p := sec.At(j)
			sm[p.Name()] = p.Value()
		}
		m[sec.Name()] = sm
	}
	return m
}
