// Command hello runs one of the graphics demos.
//
//	hello -demo snake
//	hello -demo sandbox -config hello.toml
//	hello -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/xlab/closer"

	"hello-gfx/internal/app"
	"hello-gfx/internal/config"
	"hello-gfx/internal/demos"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()
	closer.Checked(run, true)
}

type options struct {
	demo       string
	configPath string
	logLevel   string
	list       bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.demo, "demo", "first-window", "demo to run (see -list)")
	fs.StringVar(&opts.configPath, "config", "", "TOML config file; defaults apply when empty")
	fs.StringVar(&opts.logLevel, "log-level", "", "override [log] level (debug, info, warn, error)")
	fs.BoolVar(&opts.list, "list", false, "list demos and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func printDemos(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range demos.All() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
	}
	return tw.Flush()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup resolves everything run needs before a window opens.
func setup(opts options, logOut io.Writer) (config.Config, *slog.Logger, app.Factory, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, nil, err
	}
	factory, err := demos.Lookup(opts.demo)
	if err != nil {
		return cfg, nil, nil, err
	}
	if cfg.Window.Title == config.Default().Window.Title {
		cfg.Window.Title += " - " + opts.demo
	}
	return cfg, newLogger(logOut, level), factory, nil
}

func run() error {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.list {
		return printDemos(os.Stdout)
	}

	cfg, logger, factory, err := setup(opts, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	closer.Bind(func() {
		logger.Info("shutting down")
	})

	logger.Info("starting", "demo", opts.demo, "config", opts.configPath, "fps_limit", cfg.Frame.FPSLimit)
	return app.Run(cfg, logger, factory)
}
