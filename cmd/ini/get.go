package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	ini "github.com/ini-format/go-ini"
	"github.com/ini-format/go-ini/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a <section.key> argument", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	found := false
	for _, arg := range orStdin(args[1:]) {
		doc, err := getDocFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		p := doc.Lookup(path)
		if p == nil {
			continue
		}
		found = true
		fmt.Fprintln(cc.Out, p.Value())
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires <section.key> <value> <file>", cli.ErrUsage)
	}
	path, value, file := args[0], args[1], args[2]
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	p, err := lookupOrCreate(doc, path)
	if err != nil {
		return err
	}
	p.SetValue(value)
	if cfg.Quote {
		p.SetQuoted(true)
	}
	enc, err := cfg.encoding()
	if err != nil {
		return err
	}
	if file == "-" {
		return ini.Save(doc, cc.Out, enc)
	}
	return ini.SaveFile(doc, file, enc)
}

func lookupOrCreate(doc *ir.Document, path string) (*ir.Property, error) {
	if p := doc.Lookup(path); p != nil {
		return p, nil
	}
	secName, key, hasSec := splitPath(path)
	if !hasSec {
		return doc.DefaultSection().GetOrCreate(key)
	}
	sec, err := doc.GetOrCreate(secName)
	if err != nil {
		return nil, err
	}
	return sec.GetOrCreate(key)
}

// splitPath splits at the last dot, like Document.Lookup, so dotted
// section names resolve.
func splitPath(path string) (sec, key string, hasSec bool) {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[:i], path[i+1:], true
		}
	}
	return "", path, false
}
