package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/doclift/doclift/encode"
	"github.com/doclift/doclift/ir"
	"github.com/doclift/doclift/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func docliftDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two snapshots", cli.ErrUsage)
	}
	from, err := assembleFile(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	to, err := assembleFile(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	if cfg.Patch {
		return mergePatch(cfg, cc, from.Fields, to.Fields)
	}
	d := libdiff.Diff(from.Fields, to.Fields)
	if d == nil {
		return nil
	}
	return encode.Encode(d, cc.Out, cfg.encodeOpts(cc.Out)...)
}

func mergePatch(cfg *DiffConfig, cc *cli.Context, from, to *ir.Node) error {
	fromJSON, err := from.MarshalJSON()
	if err != nil {
		return err
	}
	toJSON, err := to.MarshalJSON()
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(fromJSON, toJSON)
	if err != nil {
		return fmt.Errorf("could not create merge patch: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if cfg.Compact {
		buf.Write(patch)
	} else if err := json.Indent(buf, patch, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
