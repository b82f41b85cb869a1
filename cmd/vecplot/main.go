// Package main is the vecplot CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/vecplot/internal/chart"
	"github.com/hyperjump/vecplot/internal/cli"
	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/internal/models"
	"github.com/hyperjump/vecplot/internal/server"
	"github.com/hyperjump/vecplot/internal/watcher"
	"github.com/hyperjump/vecplot/pkg/utils"
	"github.com/hyperjump/vecplot/pkg/vector"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "vecplot.yaml"

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// fatalf reports a command failure on stderr and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(stderr, format, args...)
	exit(1)
}

// loadConfig loads config from path. When path is the default and no such file
// exists, the built-in defaults are used and the returned path is empty.
// Returns the config and the path that was actually loaded (for watching).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOverrides applies command-line overrides on top of a loaded config.
func applyOverrides(cfg *config.Config, outputDir string, debug bool) {
	if outputDir != "" {
		cfg.Output.Directory = outputDir
	}
	cfg.Debug = cfg.Debug || debug
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "demo":
		runDemo()
	case "plot":
		runPlot()
	case "inspect":
		runInspect()
	case "serve":
		runServe()
	case "version", "--version", "-v":
		fmt.Printf("vecplot version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runDemo() {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputDir := fs.String("output-dir", "", "directory for the chart (overrides config)")
	plot := fs.Bool("plot", true, "render the chart after the walkthrough")
	_ = fs.Parse(os.Args[2:])

	if err := cli.WriteWalkthrough(os.Stdout, vector.New(3, 4)); err != nil {
		fatalf("Output failed: %v\n", err)
	}
	if !*plot {
		return
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v\n", err)
	}
	applyOverrides(cfg, *outputDir, false)
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fatalf("Failed to create logger: %v\n", err)
	}
	defer logger.Sync()

	fmt.Println("\nRendering chart...")
	path, err := chart.NewRenderer(cfg, chart.WithLogger(logger)).SaveFile()
	if err != nil {
		fatalf("Render failed: %v\n", err)
	}
	fmt.Printf("Chart saved to: %s\n", path)
}

func runPlot() {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputDir := fs.String("output-dir", "", "directory for the chart (overrides config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	watch := fs.Bool("watch", false, "re-render whenever the config file changes")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v\n", err)
	}
	applyOverrides(cfg, *outputDir, *debug)
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fatalf("Failed to create logger: %v\n", err)
	}
	defer logger.Sync()

	path, err := chart.NewRenderer(cfg, chart.WithLogger(logger)).SaveFile()
	if err != nil {
		fatalf("Render failed: %v\n", err)
	}
	fmt.Printf("Chart saved to: %s\n", path)

	if !*watch {
		return
	}
	if resolvedConfigPath == "" {
		fatalf("--watch needs a config file; %s not found\n", *configPath)
	}

	rerender := func(p string) {
		next, err := config.Load(p)
		if err != nil {
			logger.Warn("config reload failed", zap.String("path", p), zap.Error(err))
			return
		}
		applyOverrides(next, *outputDir, *debug)
		out, err := chart.NewRenderer(next, chart.WithLogger(logger)).SaveFile()
		if err != nil {
			logger.Warn("re-render failed", zap.Error(err))
			return
		}
		fmt.Printf("Chart saved to: %s\n", out)
	}
	stop := startWatcher(cfg, resolvedConfigPath, logger, rerender)
	defer stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", resolvedConfigPath)
	waitForSignal()
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v\n", err)
	}
	applyOverrides(cfg, "", *debug)
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fatalf("Failed to create logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", cfg.Debug),
	)

	srv := server.NewServer(cfg, logger)
	if resolvedConfigPath != "" {
		stop := startWatcher(cfg, resolvedConfigPath, logger, func(p string) {
			next, err := config.Load(p)
			if err != nil {
				logger.Warn("config reload failed", zap.String("path", p), zap.Error(err))
				return
			}
			applyOverrides(next, "", *debug)
			srv.SetConfig(next)
		})
		defer stop()
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	waitForSignal()

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runInspect() {
	flagArgs, positional := splitInspectArgs(os.Args[2:])
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(flagArgs)

	if len(positional) != 2 {
		fatalf("Usage: vecplot inspect [--output text|json] <x> <y>\n")
	}
	v, err := parseVector(positional[0], positional[1])
	if err != nil {
		fatalf("Invalid vector: %v\n", err)
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		fatalf("%v\n", err)
	}
	if err := cli.WriteReport(os.Stdout, models.NewVectorReport(v), format); err != nil {
		fatalf("Output failed: %v\n", err)
	}
}

// splitInspectArgs separates --output flags from coordinates. Negative numbers
// such as "-3" are coordinates, not flags, so the flag package cannot do this alone.
func splitInspectArgs(args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-output" || a == "--output":
			flags = append(flags, a)
			if i+1 < len(args) {
				flags = append(flags, args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-output=") || strings.HasPrefix(a, "--output="):
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	return flags, positional
}

// parseVector parses two finite coordinates.
func parseVector(xs, ys string) (vector.Vector2D, error) {
	spec := models.VectorSpec{}
	var err error
	if spec.X, err = strconv.ParseFloat(xs, 64); err != nil {
		return vector.Vector2D{}, fmt.Errorf("x: %w", err)
	}
	if spec.Y, err = strconv.ParseFloat(ys, 64); err != nil {
		return vector.Vector2D{}, fmt.Errorf("y: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return vector.Vector2D{}, err
	}
	return spec.Vector(), nil
}

// startWatcher watches path and calls onChange after edits settle. The returned func stops it.
func startWatcher(cfg *config.Config, path string, logger *zap.Logger, onChange func(string)) func() {
	opts := []watcher.WatcherOption{watcher.WithDebounce(cfg.Watch.Debounce())}
	if cfg.Debug {
		opts = append(opts, watcher.WithLogger(logger))
	}
	w := watcher.NewWatcher([]string{path}, onChange, opts...)
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		logger.Warn("config watch disabled", zap.String("path", path), zap.Error(err))
		cancel()
		return func() {}
	}
	return func() {
		cancel()
		w.Stop()
	}
}

func waitForSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

func printUsage() {
	fmt.Println(`vecplot - 2D vector toolkit and plotting demo

Usage:
  vecplot demo [flags]                 Walk through Vector2D operations, then render the chart
  vecplot plot [flags]                 Render the vector chart to PNG
  vecplot inspect [flags] <x> <y>      Show magnitude and unit vector of (x, y)
  vecplot serve [flags]                Start the HTTP server
  vecplot version                      Show version
  vecplot help                         Show this help

Demo Flags:
  --config string      Config file path (default: vecplot.yaml, built-in defaults if missing)
  --output-dir string  Chart directory (overrides config)
  --plot               Render the chart after the walkthrough (default: true)

Plot Flags:
  --config string      Config file path
  --output-dir string  Chart directory (overrides config)
  --debug              Enable debug logging
  --watch              Re-render whenever the config file changes

Inspect Flags:
  --output string      Output format: text or json (default: text)

Serve Flags:
  --config string      Config file path (reloaded on change)
  --debug              Enable debug logging

Examples:
  vecplot demo
  vecplot plot --output-dir ./charts
  vecplot plot --config vecplot.yaml --watch
  vecplot inspect 3 4
  vecplot inspect --output json -3 4
  vecplot serve --config vecplot.yaml`)
}
