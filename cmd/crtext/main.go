// Package main is the entry point for the crtext command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kivattt/getopt"
	"golang.org/x/term"

	"github.com/dshills/crtext/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errExit signals that flag handling already printed what was asked for.
var errExit = errors.New("exit")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stdout, os.Stderr)
	if errors.Is(err, errExit) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	opts.Terminal = term.IsTerminal(int(os.Stdout.Fd()))

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stdout, stderr io.Writer) (app.Options, error) {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	fs := getopt.NewFlagSet("crtext", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (YAML or TOML)")
	fs.StringVar(&opts.ScriptPath, "script", "", "JSON pipeline to apply")
	fs.StringVar(&opts.LuaPath, "lua", "", "Lua script defining transform(s)")
	fs.BoolVar(&opts.JSON, "json", false, "Print a JSON report instead of the result")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-run when the input or scripts change")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.Aliases(
		"c", "config",
		"s", "script",
		"l", "lua",
		"j", "json",
		"w", "watch",
		"v", "version",
		"h", "help",
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "crtext - text transformation pipeline\n\n")
		fmt.Fprintf(stderr, "Usage: crtext [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  crtext -s tidy.json notes.txt     Apply a pipeline to a file\n")
		fmt.Fprintf(stderr, "  echo hi | crtext -l shout.lua     Transform stdin with Lua\n")
		fmt.Fprintf(stderr, "  crtext -j -w -s tidy.json in.txt  Print a report on every change\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errExit
		}
		return opts, err
	}

	if showHelp {
		fs.Usage()
		return opts, errExit
	}
	if showVersion {
		fmt.Fprintf(stdout, "crtext %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errExit
	}

	switch opts.LogLevel {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.InputPath = rest[0]
	default:
		return opts, fmt.Errorf("expected at most one input file, got %d", len(rest))
	}
	return opts, nil
}
