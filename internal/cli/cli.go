package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/badele/brokenkeys/internal/config"
	"github.com/badele/brokenkeys/internal/exporter"
	"github.com/badele/brokenkeys/internal/logging"
	"github.com/badele/brokenkeys/internal/reader"
	"github.com/badele/brokenkeys/internal/scanner"
	"github.com/badele/brokenkeys/internal/tokenizer"
	"github.com/badele/brokenkeys/internal/types"
)

var Version = "dev"

// DefaultConfigPath is read when present.
const DefaultConfigPath = "~/.config/brokenkeys/config.yaml"

type CLI struct {
	Config    kong.ConfigFlag  `help:"YAML configuration file." placeholder:"FILE"`
	Illegal   string           `short:"i" default:"${default_illegal}" env:"BROKENKEYS_ILLEGAL" help:"Characters treated as illegal (case sensitive)."`
	Format    string           `short:"f" default:"text" enum:"text,json,table,stats,highlight" help:"Output format (${enum})."`
	Encoding  string           `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Input encoding (${enum})."`
	Width     int              `default:"80" help:"Line width of the highlight format."`
	MaxLine   int              `default:"0" help:"Maximum input line size in bytes, 0 for unlimited."`
	NoBanner  bool             `help:"Do not print the banner."`
	Sample    bool             `help:"Check the sample sentence instead of reading stdin."`
	LogLevel  string           `default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat string           `default:"text" enum:"text,json" help:"Log format (${enum})."`
	Version   kong.VersionFlag `help:"Print version and exit."`
}

// Env carries the process streams so runs can be driven from tests.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Options returns the kong options of the brokenkeys command. Existing
// files among configPaths are loaded as YAML configuration.
func Options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("brokenkeys"),
		kong.Description("Reports the words of a line you could not type on a broken keyboard."),
		kong.UsageOnError(),
		kong.Configuration(config.YAML, configPaths...),
		kong.Vars{
			"version":         Version,
			"default_illegal": scanner.DefaultIllegal,
		},
	}
}

func (c *CLI) Run(env *Env) error {
	logger := logging.NewLogger(logging.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: env.Stderr,
	})

	set := scanner.NewExclusionSet(c.Illegal)
	if set.Empty() {
		logger.Warn("empty exclusion set, no word can be illegal")
	}

	if !c.NoBanner && c.Format != "json" {
		if err := exporter.ExportBanner(env.Stdout, exporter.SampleInput, set.String()); err != nil {
			return fmt.Errorf("error writing banner: %w", err)
		}
	}

	line, err := c.readLine(env.Stdin, logger)
	if err != nil {
		return err
	}

	text := string(line)
	if c.Format == "highlight" && !utf8.ValidString(text) {
		logger.Warn("input is not valid UTF-8, invalid bytes are echoed as U+FFFD", "encoding", c.Encoding)
	}

	tok := tokenizer.NewTokenizer(line)
	list := tok.Tokenize()
	logger.Debug("line tokenized", "words", list.Len())

	sc := scanner.NewScanner(set)
	matches := sc.Check(list)
	logger.Debug("words checked", "illegal", len(matches), "set", set.String())

	exportErr := c.export(env.Stdout, text, list, tok, sc, matches)

	released, releaseErr := list.Release()
	logger.Debug("word list released", "releases", released)

	return errors.Join(exportErr, releaseErr)
}

func (c *CLI) readLine(stdin io.Reader, logger *slog.Logger) ([]byte, error) {
	if c.Sample {
		return []byte(exporter.SampleInput), nil
	}

	rd, err := reader.NewDecodingReader(stdin, c.Encoding)
	if err != nil {
		return nil, err
	}
	rd.MaxSize = c.MaxLine

	line, err := rd.ReadLine()
	if err != nil {
		return nil, err
	}
	logger.Debug("line read", "bytes", len(line), "grows", rd.Grows())
	return line, nil
}

func (c *CLI) export(w io.Writer, text string, list *types.WordList, tok types.TokenizerWithStats, sc *scanner.Scanner, matches []types.Match) error {
	switch c.Format {
	case "json":
		return exporter.ExportJSON(w, types.Report{
			Illegal:    sc.Set().String(),
			Words:      list.Words(),
			Matches:    matches,
			TokenStats: tok.Stats(),
			ScanStats:  sc.Stats(list, matches),
		})

	case "table":
		return exporter.ExportTable(w, list, matches)

	case "stats":
		return exporter.ExportStats(w, tok.Stats(), sc.Stats(list, matches))

	case "highlight":
		out, err := exporter.ExportHighlight(text, sc.Set(), c.Width)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
		return exporter.ExportText(w, matches)

	default:
		return exporter.ExportText(w, matches)
	}
}
