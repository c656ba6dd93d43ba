package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/zestagio/reader-launcher/internal/browser"
	"github.com/zestagio/reader-launcher/internal/buildinfo"
	"github.com/zestagio/reader-launcher/internal/config"
	"github.com/zestagio/reader-launcher/internal/logger"
	"github.com/zestagio/reader-launcher/internal/portfinder"
	"github.com/zestagio/reader-launcher/internal/server"
)

type flags struct {
	configPath string
	root       string
	port       int
	noBrowser  bool
	verbose    bool
	version    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}

// run returns the process exit code: 0 on a clean or interrupt-driven stop,
// 1 on any startup failure.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	if f.version {
		fmt.Fprintln(stdout, buildinfo.Version())
		return 0
	}

	if err := launch(ctx, f, stdout); err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("reader-launcher", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.configPath, "config", "", "Path to config file (optional)")
	fs.StringVar(&f.root, "root", "", "Directory to serve, overrides server.root")
	fs.IntVar(&f.port, "port", 0, "First port to try, overrides server.start_port")
	fs.BoolVar(&f.noBrowser, "no-browser", false, "Do not open the browser")
	fs.BoolVar(&f.verbose, "verbose", false, "Log every request")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

func launch(ctx context.Context, f flags, stdout io.Writer) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.NewOptions(
		cfg.Log.Level,
		logger.WithProductionMode(cfg.Global.IsProduction()),
	)); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}
	defer logger.Sync()

	lg := zap.L().Named("main")
	lg.Debug("starting", zap.String("version", buildinfo.Version()))

	base, err := executableDir()
	if err != nil {
		return fmt.Errorf("locate executable: %v", err)
	}

	rootPath, err := cfg.Server.ResolveRoot(base)
	if err != nil {
		return fmt.Errorf("resolve root %q: %v", cfg.Server.Root, err)
	}

	// Nothing touches the network until the root is known to exist.
	root, err := server.ResolveRoot(rootPath)
	if err != nil {
		return err
	}

	finder, err := portfinder.New(portfinder.NewOptions(
		cfg.Server.Host,
		cfg.Server.StartPort,
		cfg.Server.PortAttempts,
	))
	if err != nil {
		return fmt.Errorf("create port finder: %v", err)
	}

	port, err := finder.Find(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			lg.Debug("interrupted while looking for a free port")
			return nil
		}
		return err
	}

	var launcher *browser.Launcher
	if cfg.Browser.Enabled {
		launcher, err = browser.New(browser.NewOptions(
			zap.L().Named("browser"),
			browser.NewSystemOpener(),
			browser.WithDelay(cfg.Browser.Delay),
		))
		if err != nil {
			return fmt.Errorf("create browser launcher: %v", err)
		}
	}

	srv, err := initServer(cfg.Server, root, port, func(url string) {
		fmt.Fprintf(stdout, "Serving '%s' at %s\n", root, url)
		fmt.Fprintln(stdout, "Press Ctrl+C (or close this window) to stop the server.")

		if launcher != nil {
			launcher.Launch(ctx, url)
		}
	})
	if err != nil {
		return fmt.Errorf("init server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Fprintln(stdout, "\nStopping server…")
	}
	return nil
}

func loadConfig(f flags) (config.Config, error) {
	cfg, err := config.ParseAndValidate(f.configPath)
	if err != nil {
		if f.configPath == "" {
			return cfg, fmt.Errorf("parse and validate config: %v", err)
		}
		return cfg, fmt.Errorf("parse and validate config %q: %v", f.configPath, err)
	}

	if f.root != "" {
		cfg.Server.Root = f.root
	}
	if f.port != 0 {
		cfg.Server.StartPort = f.port
	}
	if f.noBrowser {
		cfg.Browser.Enabled = false
	}
	if f.verbose {
		cfg.Server.AccessLog = "verbose"
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %v", err)
	}
	return cfg, nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
