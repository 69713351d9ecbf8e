package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	ini "github.com/ini-format/go-ini"
	"github.com/ini-format/go-ini/ir"
	"github.com/ini-format/go-ini/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	left, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	right, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d := ini.Compare(left, right)
	if !d.HasChanges() {
		return nil
	}
	renderDiff(cc.Out, d, cfg.useColor(cc.Out))
	return cli.ExitCodeErr(1)
}

type diffPrinter struct {
	w   io.Writer
	add func(format string, a ...interface{}) string
	del func(format string, a ...interface{}) string
	hdr func(format string, a ...interface{}) string
}

func renderDiff(w io.Writer, d *libdiff.DocumentDiff, colored bool) {
	p := &diffPrinter{w: w, add: fmt.Sprintf, del: fmt.Sprintf, hdr: fmt.Sprintf}
	if colored {
		p.add = color.GreenString
		p.del = color.RedString
		p.hdr = color.New(color.FgYellow, color.Bold).SprintfFunc()
	}
	for _, sec := range d.RemovedSections {
		p.section('-', sec)
	}
	for _, sec := range d.AddedSections {
		p.section('+', sec)
	}
	for _, sd := range d.ModifiedSections {
		name := sd.Name
		if name == "" {
			name = "(default)"
		}
		fmt.Fprintln(w, p.hdr("[%s]", name))
		for _, prop := range sd.RemovedProperties {
			fmt.Fprintln(w, p.del("-%s=%s", prop.Name(), prop.Value()))
		}
		for _, prop := range sd.AddedProperties {
			fmt.Fprintln(w, p.add("+%s=%s", prop.Name(), prop.Value()))
		}
		for i := range sd.ModifiedProperties {
			p.modified(&sd.ModifiedProperties[i])
		}
	}
}

func (p *diffPrinter) section(mark byte, sec *ir.Section) {
	f := p.add
	if mark == '-' {
		f = p.del
	}
	fmt.Fprintln(p.w, f("%c[%s]", mark, sec.Name()))
	for i := 0; i < sec.Len(); i++ {
		prop := sec.At(i)
		fmt.Fprintln(p.w, f("%c%s=%s", mark, prop.Name(), prop.Value()))
	}
}

// modified prints one changed value with character-level edits
// highlighted.
func (p *diffPrinter) modified(pd *libdiff.PropertyDiff) {
	fmt.Fprintf(p.w, "~%s=", pd.Name)
	for _, ed := range pd.ValueDiff() {
		switch ed.Type {
		case diffpatch.DiffDelete:
			fmt.Fprint(p.w, p.del("[-%s]", ed.Text))
		case diffpatch.DiffInsert:
			fmt.Fprint(p.w, p.add("[+%s]", ed.Text))
		default:
			fmt.Fprint(p.w, ed.Text)
		}
	}
	fmt.Fprintln(p.w)
}
