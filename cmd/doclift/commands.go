package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "url",
			Description: "view location the snapshot was captured from",
			Type:        cli.NamedFuncOpt(cfg.urlOpt, "(url)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "doclift").
		WithSynopsis("doclift [opts] command [opts]").
		WithDescription("doclift extracts structured records from rendered view snapshots.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docliftMain(cfg, cc, args)
		}).
		WithSubs(
			ExtractCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg))
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "filter",
			Description: "only emit documents matching the expression",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Filter = a
				return a, nil
			}, "(expr)"),
		},
	}
	cmd := cli.NewCommand("extract").
		WithAliases("x", "ex").
		WithSynopsis("extract [-filter expr] [files]").
		WithDescription("extract the rendered record from snapshots as canonical documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docliftExtract(cfg, cc, args)
		})
	cfg.Extract = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view extracted documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return docliftView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <snapshot> <snapshot>").
		WithDescription("diff the records extracted from two snapshots").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docliftDiff(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <snapshot> [snapshots]").
		WithDescription("merge the records extracted from snapshots, later ones winning").
		WithRun(func(cc *cli.Context, args []string) error {
			return docliftMerge(cfg, cc, args)
		})
}
