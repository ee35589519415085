package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"github.com/reoring/shorthand"
)

func compile(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		n, err := compileFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if i > 0 && cfg.format() == YAMLFormat {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := encodeNode(cc.Out, n, cfg.format()); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// compileFile parses file, or stdin when file is "-".
func compileFile(cfg *MainConfig, cc *cli.Context, file string) (*shorthand.Node, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	n, err := shorthand.ParseReader(r, cfg.parseOpts(file)...)
	if err != nil {
		return nil, err
	}
	count := 0
	n.Walk(func(string, *shorthand.Node) bool { count++; return true })
	theLog.Debug("compiled", "file", file, "nodes", count)
	return n, nil
}

func encodeNode(w io.Writer, n *shorthand.Node, f Format) error {
	switch f {
	case YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()
	default:
		d, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	}
}
