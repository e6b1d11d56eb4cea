package main

import (
	"fmt"

	doclift "github.com/doclift/doclift"
	"github.com/doclift/doclift/encode"

	"github.com/scott-cotton/cli"
)

func docliftExtract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	emitted := 0
	for _, file := range args {
		doc, err := assembleFile(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if cfg.Filter != "" {
			ok, err := doclift.Filter(doc, cfg.Filter)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if emitted > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := encode.Encode(doc.Node(), cc.Out, cfg.encodeOpts(cc.Out)...); err != nil {
			return err
		}
		emitted++
	}
	return nil
}
