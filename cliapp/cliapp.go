// Package cliapp wires the compilation engine to a command-line
// interface: flag parsing, an optional TOML config file for defaults,
// and exit-code conventions. It is the I/O adapter the core pipeline is
// deliberately ignorant of.
package cliapp

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/shadowCow/llspecparse-go/engine"
	"github.com/shadowCow/llspecparse-go/render"
)

const (
	// ExitSuccess indicates the input parsed successfully.
	ExitSuccess = 0

	// ExitLoadError indicates the lexspec or grammarspec failed to load.
	ExitLoadError = 1

	// ExitParseError indicates tokenizing or parsing the input failed.
	ExitParseError = 2
)

// FileConfig is the shape of an optional TOML config file, supplying
// defaults for flags the caller did not set explicitly.
type FileConfig struct {
	Debug bool `toml:"debug"`
}

// Config holds one invocation's resolved settings.
type Config struct {
	Debug       bool
	ConfigPath  string
	LexPath     string
	GrammarPath string
	Input       string
}

// ParseArgs parses args (excluding the program name) into a Config,
// applying an optional TOML config file's defaults first.
func ParseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := pflag.NewFlagSet("llspecparse", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	debug := fs.BoolP("debug", "v", false, "print patterns/grammar/FIRST/FOLLOW/table/conflicts debug views before the result")
	configPath := fs.StringP("config", "c", "", "path to a TOML config file supplying flag defaults")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{Debug: *debug, ConfigPath: *configPath}

	if cfg.ConfigPath != "" {
		var fileCfg FileConfig
		if _, err := toml.DecodeFile(cfg.ConfigPath, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", cfg.ConfigPath, err)
		}
		if !fs.Changed("debug") {
			cfg.Debug = fileCfg.Debug
		}
	}

	rest := fs.Args()
	if len(rest) != 3 {
		return Config{}, fmt.Errorf("usage: llspecparse [--debug] [--config path.toml] <lexspec-file> <grammarspec-file> <input-string>")
	}
	cfg.LexPath, cfg.GrammarPath, cfg.Input = rest[0], rest[1], rest[2]
	return cfg, nil
}

// Run executes one compile-then-parse invocation, writing diagnostics
// and (if cfg.Debug) the compiled artifacts to out, and returns a
// process exit code.
func Run(cfg Config, out io.Writer) int {
	g, err := engine.CompileFiles(cfg.LexPath, cfg.GrammarPath)
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return ExitLoadError
	}

	if cfg.Debug {
		printDebugViews(out, g)
	}

	tree, root, err := g.Parse(cfg.Input)
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return ExitParseError
	}

	fmt.Fprintln(out, render.Tree(tree, root))
	return ExitSuccess
}

func printDebugViews(out io.Writer, g *engine.Grammar) {
	names := g.Nonterminals()

	fmt.Fprintln(out, "-- patterns --")
	fmt.Fprintln(out, render.Patterns(g.PatternNames()))
	fmt.Fprintln(out, "-- grammar --")
	fmt.Fprintln(out, render.Grammar(names))
	fmt.Fprintln(out, "-- FIRST --")
	fmt.Fprintln(out, render.Sets("FIRST", names, g.First))
	fmt.Fprintln(out, "-- FOLLOW --")
	fmt.Fprintln(out, render.Sets("FOLLOW", names, g.Follow))
	fmt.Fprintln(out, "-- table --")
	fmt.Fprintln(out, render.Table(tableCells(g)))
	fmt.Fprintln(out, "-- conflicts --")
	fmt.Fprintln(out, render.Conflicts(conflictViews(g)))
	fmt.Fprintln(out, "-- parse tree follows --")
}

func tableCells(g *engine.Grammar) []render.TableCell {
	cells := g.TableCells()
	out := make([]render.TableCell, len(cells))
	for i, c := range cells {
		out[i] = render.TableCell{Nonterminal: c.Nonterminal, Terminal: c.Terminal, Alternative: c.Alternative}
	}
	return out
}

func conflictViews(g *engine.Grammar) []render.Conflict {
	conflicts := g.Conflicts()
	out := make([]render.Conflict, len(conflicts))
	for i, c := range conflicts {
		out[i] = render.Conflict{Nonterminal: c.Nonterminal, Terminal: c.Terminal, Alternatives: c.Alternatives}
	}
	return out
}

// Main is the shared entry point for cmd/llspecparse; it is a thin
// wrapper so tests can drive it without calling os.Exit.
func Main(args []string) int {
	cfg, err := ParseArgs(args, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return ExitLoadError
	}
	return Run(cfg, os.Stdout)
}
