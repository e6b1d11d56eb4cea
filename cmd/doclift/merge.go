package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// merge folds the records extracted from several snapshots with RFC 7396
// merge-patch semantics: later snapshots win field by field. The merged
// document keeps the first snapshot's identifier.
func docliftMerge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge takes at least one snapshot", cli.ErrUsage)
	}
	var (
		id  string
		acc []byte
	)
	for i, file := range args {
		doc, err := assembleFile(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		fields, err := doc.Fields.MarshalJSON()
		if err != nil {
			return err
		}
		if i == 0 {
			id = doc.ID
			acc = fields
			continue
		}
		acc, err = jsonpatch.MergePatch(acc, fields)
		if err != nil {
			return fmt.Errorf("could not merge %s: %w", file, err)
		}
	}
	wrapper, err := json.Marshal(map[string]json.RawMessage{id: acc})
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if cfg.Compact {
		buf.Write(wrapper)
	} else if err := json.Indent(buf, wrapper, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
