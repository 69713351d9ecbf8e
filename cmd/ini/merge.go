package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	ini "github.com/ini-format/go-ini"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires 2 args, got %v", cli.ErrUsage, args)
	}
	target, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	other, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	opts := ini.MergeOptions{
		AddSections:      cfg.AddSections,
		RemoveSections:   cfg.RemoveSections,
		AddProperties:    cfg.AddProperties,
		RemoveProperties: cfg.RemoveProperties,
		ModifyProperties: cfg.ModifyProperties,
	}
	if opts == (ini.MergeOptions{}) {
		opts = ini.MergeAll()
	}
	res, err := ini.Merge(target, ini.Compare(target, other), opts)
	if err != nil {
		return err
	}
	enc, err := cfg.encoding()
	if err != nil {
		return err
	}
	if err := ini.Save(target, cc.Out, enc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "applied %d changes (+%ds -%ds +%dp -%dp ~%dp)\n",
		res.TotalChanges(),
		res.SectionsAdded, res.SectionsRemoved,
		res.PropertiesAdded, res.PropertiesRemoved, res.PropertiesModified)
	return nil
}
