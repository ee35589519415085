package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"github.com/reoring/shorthand"
	"github.com/reoring/shorthand/i18n"
)

type MainConfig struct {
	Strict  bool   `cli:"name=strict desc='reject unknown type keywords'"`
	Color   bool   `cli:"name=color desc='color diagnostics and diffs'"`
	Verbose bool   `cli:"name=v desc='log debug information to stderr'"`
	Lang    string `cli:"name=lang desc='message language: en or ja'"`
	Config  string `cli:"name=config desc='yaml file with default settings'"`

	OutFormat *Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig is the yaml document read through -config. Command line options
// win over it.
type FileConfig struct {
	Format *Format `yaml:"format"`
	Strict *bool   `yaml:"strict"`
	Color  *bool   `yaml:"color"`
	Lang   string  `yaml:"lang"`
}

func loadFileConfig(r io.Reader) (*FileConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && err != io.EOF {
		return nil, err
	}
	return fc, nil
}

// optSet reports whether the named option was given on the command line.
func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// applyFile fills settings that were not given on the command line.
func (cfg *MainConfig) applyFile(fc *FileConfig) {
	if fc.Format != nil && cfg.OutFormat == nil {
		cfg.OutFormat = fc.Format
	}
	if fc.Strict != nil && !cfg.optSet("strict") {
		cfg.Strict = *fc.Strict
	}
	if fc.Color != nil && !cfg.optSet("color") {
		cfg.Color = *fc.Color
	}
	if fc.Lang != "" && cfg.Lang == "" {
		cfg.Lang = fc.Lang
	}
}

// setup applies -config, -lang and -v once the main options are parsed.
func (cfg *MainConfig) setup() error {
	if cfg.Config != "" {
		f, err := os.Open(cfg.Config)
		if err != nil {
			return fmt.Errorf("could not open config %q: %w", cfg.Config, err)
		}
		defer f.Close()
		fc, err := loadFileConfig(f)
		if err != nil {
			return fmt.Errorf("error decoding config %q: %w", cfg.Config, err)
		}
		cfg.applyFile(fc)
		theLog.Debug("loaded config", "file", cfg.Config)
	}
	if cfg.Lang != "" {
		i18n.SetLanguage(cfg.Lang)
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return nil
}

func (cfg *MainConfig) fmtFunc(fps ...**Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return JSONFormat
}

func (cfg *MainConfig) parseOpts(file string) []shorthand.Option {
	return []shorthand.Option{
		shorthand.WithStrict(cfg.Strict),
		shorthand.WithFilename(file),
	}
}

// palette returns the output colors for w. Colors are on when -color is
// given, off when -color=false is given, and otherwise follow whether w is a
// terminal.
func (cfg *MainConfig) palette(w io.Writer) *Palette {
	on := cfg.Color
	if !cfg.optSet("color") && !on {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			on = true
		}
	}
	if !on {
		return plainPalette()
	}
	color.NoColor = false
	return &Palette{
		Insert: color.GreenString,
		Delete: color.RedString,
		Error:  color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header: color.CyanString,
	}
}

type Palette struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
	Error  func(string, ...any) string
	Header func(string, ...any) string
}

func plainPalette() *Palette {
	return &Palette{Insert: fmt.Sprintf, Delete: fmt.Sprintf, Error: fmt.Sprintf, Header: fmt.Sprintf}
}

type CompileConfig struct {
	*MainConfig

	Compile *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	Indent bool `cli:"name=i desc='indent output'"`

	Schema *cli.Command
}
