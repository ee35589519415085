package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"

	"github.com/reoring/shorthand/jsonschema"
)

func exportSchema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		n, err := compileFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		s, err := jsonschema.FromNode(n)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		var d []byte
		if cfg.Indent {
			d, err = json.MarshalIndent(s, "", "  ")
		} else {
			d, err = json.Marshal(s)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
