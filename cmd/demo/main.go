// cmd/demo/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"go-vector-demo/internal/app"
	"go-vector-demo/internal/assets"
	"go-vector-demo/internal/config"
	"go-vector-demo/internal/defs"
	"go-vector-demo/internal/entity"
	"go-vector-demo/internal/event"
	"go-vector-demo/internal/platform"
	"go-vector-demo/internal/state"
	"go-vector-demo/pkg/render"
)

type options struct {
	configPath string
	backend    string
	hz         int
	ticks      uint64
	snapshot   string
	logLevel   string
	logFile    string
	pprof      string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML settings file.")
	flag.StringVar(&opts.backend, "backend", "", "Output backend: window, terminal or headless.")
	flag.IntVar(&opts.hz, "hz", 0, "Tick rate (defaults to the configured TPS).")
	flag.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.StringVar(&opts.logFile, "log-file", "", "Append logs to this file instead of stderr (useful with -backend terminal).")
	flag.StringVar(&opts.pprof, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060.")
	flag.Parse()

	os.Exit(run(opts))
}

func run(opts options) int {
	logger, closeLog, err := newLogger(opts.logLevel, opts.logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer closeLog()
	gg.SetLogger(logger)

	settings, err := loadSettings(opts)
	if err != nil {
		logger.Error("load settings", "err", err)
		return 1
	}

	if opts.pprof != "" {
		go func() {
			logger.Warn("pprof server stopped", "err", http.ListenAndServe(opts.pprof, nil))
		}()
	}

	var scene *defs.SceneDefinition
	if settings.Scene != "" {
		s, err := defs.LoadScene(settings.Scene)
		if err != nil {
			logger.Error("load scene", "path", settings.Scene, "err", err)
			return 1
		}
		scene = &s
	}

	fonts := assets.NewFontManager(logger)
	defer fonts.Cleanup()

	newApp := func(dev render.Device) *app.App {
		a := app.New(entity.NewECS(), state.NewAppState(dev), app.Options{
			Fonts: fonts.Loader(settings.Font.Path),
			Render: render.Options{
				Width:      settings.Width,
				Height:     settings.Height,
				Background: settings.Background,
				FontSize:   settings.Font.Size,
			},
			Scene:  scene,
			Logger: logger,
		})
		a.Events.Subscribe(event.StatusChanged, event.ListenerFunc(func(e event.Event) {
			logger.Debug("status changed", "status", e.Data)
		}))
		return a
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		a      *app.App
		runErr error
	)
	switch settings.Backend {
	case config.BackendWindow:
		dev := platform.NewWindowDevice(settings.Width, settings.Height)
		a = newApp(dev)
		runErr = platform.RunWindow(a, dev, platform.WindowConfig{
			Title:  settings.Title,
			Width:  settings.Width,
			Height: settings.Height,
			TPS:    settings.TPS,
		})

	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err == nil {
			err = screen.Init()
		}
		if err != nil {
			logger.Error("startup failed", "resource", "terminal", "err", err)
			return 1
		}
		a = newApp(platform.NewTerminalDevice(screen, settings.Width, settings.Height))
		runErr = platform.RunTerminal(ctx, a, screen, platform.TerminalConfig{TPS: settings.TPS})
		screen.Fini()

	case config.BackendHeadless:
		a = newApp(platform.NewMemoryDevice(settings.Width, settings.Height))
		runErr = platform.RunHeadless(ctx, a, platform.HeadlessConfig{
			Hz:    settings.TPS,
			Ticks: settings.Headless.Ticks,
		})
		if path := settings.Headless.Snapshot; path != "" && a.Frames() > 0 {
			if err := a.SaveSnapshot(path); err != nil {
				logger.Error("write snapshot", "path", path, "err", err)
			} else {
				logger.Info("snapshot written", "path", path)
			}
		}
	}
	a.Shutdown()

	if runErr != nil {
		logger.Error("run failed", "backend", settings.Backend, "err", runErr)
		return 1
	}
	if a.Status() == state.Failure {
		return 1
	}
	return 0
}

// loadSettings reads the config file and applies the flags that were set
// explicitly on the command line.
func loadSettings(opts options) (config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return settings, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			settings.Backend = opts.backend
		case "hz":
			settings.TPS = opts.hz
		case "ticks":
			settings.Headless.Ticks = opts.ticks
		case "snapshot":
			settings.Headless.Snapshot = opts.snapshot
		}
	})
	return settings, settings.Validate()
}

func newLogger(level, path string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	out, closeFn := io.Writer(os.Stderr), func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
