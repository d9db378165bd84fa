package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"wordfreq/internal/analysis"
	"wordfreq/internal/config"
	"wordfreq/internal/export"
	"wordfreq/internal/pipeline"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	in := fs.String("in", "", "text file to analyze")
	out := fs.String("out", "", "CSV file to write")
	appendMode := fs.Bool("append", false, "append to an existing CSV instead of replacing it")
	encoding := fs.String("encoding", "", "source text encoding (utf-8, windows-1252, ...)")
	locale := fs.String("locale", "", "lowercasing rules: "+strings.Join(analysis.NewRegistry().Names(), ", ")+" or a language tag")
	comparer := fs.String("comparer", "", `word equality: "exact" or a language tag for collation`)
	quoting := fs.String("quote", "", "CSV quoting: minimal or none")
	order := fs.String("columns", "", "column order: alphabetical or declared")
	top := fs.Int("top", 0, "keep only the N most frequent words (0 = all)")
	printReport := fs.Bool("print", false, "print the ranked list to stdout")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(*configPath, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	// Flags win over file and environment, but only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "out":
			cfg.Output = *out
		case "append":
			cfg.Append = *appendMode
		case "encoding":
			cfg.Encoding = *encoding
		case "locale":
			cfg.Locale = *locale
		case "comparer":
			cfg.Comparer = *comparer
		case "quote":
			cfg.Quoting = *quoting
		case "columns":
			cfg.ColumnOrder = *order
		case "top":
			cfg.Top = *top
		case "print":
			cfg.Print = *printReport
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	if cfg.Input == "" {
		fmt.Fprintln(stderr, "no input file: use -in")
		fs.Usage()
		return exitUsage
	}
	if cfg.Output == "" && !cfg.Print {
		fmt.Fprintln(stderr, "nothing to do: use -out and/or -print")
		return exitUsage
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	logger.Debug("starting wordfreq",
		"version", Version,
		"input", cfg.Input,
		"output", cfg.Output,
		"config", *configPath,
	)

	opts, err := cfg.PipelineOptions()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	sess := pipeline.NewSession(opts, logger)

	if err := sess.Load(cfg.Input); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	ranked, err := sess.Analyze()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	if cfg.Print {
		if err := export.WriteReport(stdout, ranked); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
	}
	if cfg.Output != "" {
		if err := sess.Export(cfg.Output); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
	}
	return exitOK
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
