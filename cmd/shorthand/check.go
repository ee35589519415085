package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	n, err := compileFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	want, err := readExpected(args[1])
	if err != nil {
		return err
	}
	got, err := canonicalJSON(n.ToMap())
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", args[0], err)
	}
	if got == want {
		theLog.Debug("tree matches", "file", args[0], "expected", args[1])
		return nil
	}
	pal := cfg.palette(cc.Out)
	fmt.Fprintln(cc.Out, pal.Header("--- %s", args[1]))
	fmt.Fprintln(cc.Out, pal.Header("+++ %s", args[0]))
	if err := writeLineDiff(cc.Out, pal, want, got); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func readExpected(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	d, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return "", fmt.Errorf("error decoding %s: %w", file, err)
	}
	return canonicalJSON(v)
}

// canonicalJSON encodes v indented with sorted keys so two equal trees encode
// to the same text. Whole numbers decoded as float64 print as integers.
func canonicalJSON(v any) (string, error) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(d) + "\n", nil
}

// writeLineDiff writes a line oriented diff from a to b, prefixing removed
// lines with '-', added lines with '+' and unchanged lines with ' '.
func writeLineDiff(w io.Writer, pal *Palette, a, b string) error {
	dmp := diffpatch.New()
	ca, cb, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineArray)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			var out string
			switch d.Type {
			case diffpatch.DiffDelete:
				out = pal.Delete("-%s", line)
			case diffpatch.DiffInsert:
				out = pal.Insert("+%s", line)
			default:
				out = " " + line
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}
