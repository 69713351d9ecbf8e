package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	ini "github.com/ini-format/go-ini"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	enc, err := cfg.encoding()
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		doc, err := getDocFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if err := ini.Save(doc, cc.Out, enc, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error writing %q: %w", arg, err)
		}
	}
	return nil
}

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	total := 0
	for _, arg := range orStdin(args) {
		doc, err := getDocFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		for _, pe := range doc.ParsingErrors() {
			fmt.Fprintf(cc.Out, "%s:%d: %s: %q\n", arg, pe.LineNumber, pe.Reason, pe.Line)
			total++
		}
	}
	if total > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
