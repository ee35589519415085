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
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "shorthand").
		WithSynopsis("shorthand [opts] command [opts]").
		WithDescription("shorthand compiles indented schema shorthand into schema trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return shorthandMain(cfg, cc, args)
		}).
		WithSubs(
			CompileCommand(cfg),
			CheckCommand(cfg),
			SchemaCommand(cfg))
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c").
		WithSynopsis("compile [files]").
		WithDescription("compile shorthand files (or stdin) into schema trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return compile(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check <shorthand-file> <expected-json-file>").
		WithDescription("compile a shorthand file and compare the tree with an expected json document; exits 1 on difference").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schema, "jsonschema").
		WithAliases("js").
		WithSynopsis("jsonschema [-i] [files]").
		WithDescription("export shorthand files (or stdin) as json schema documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exportSchema(cfg, cc, args)
		})
}
