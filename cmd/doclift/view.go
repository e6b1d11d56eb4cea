package main

import (
	"fmt"

	"github.com/doclift/doclift/encode"

	"github.com/scott-cotton/cli"
)

func docliftView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encodeOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	for i, file := range args {
		doc, err := assembleFile(cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := encode.Encode(doc.Node(), cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
