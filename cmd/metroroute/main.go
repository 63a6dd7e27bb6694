package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/metroroute/builder"
	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/httpapi"
	"github.com/katalvlaran/metroroute/records"
	"github.com/katalvlaran/metroroute/registry"
	"github.com/katalvlaran/metroroute/routing"
)

const shutdownTimeout = 30 * time.Second

var (
	version = "--- set from makefile ---"

	help        = flag.Bool("help", false, "show help message")
	showVersion = flag.Bool("version", false, "show command version")
	configPath  = flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	dataPath    = flag.String("data", "", "network dataset, overrides data.path")
	addr        = flag.String("addr", "", "HTTP address, overrides server.addr")
	serve       = flag.Bool("serve", false, "serve the HTTP API instead of answering one query")
	interactive = flag.Bool("i", false, "prompt for queries on stdin")
	from        = flag.String("from", "", "origin station name")
	to          = flag.String("to", "", "destination station name")
	k           = flag.Int("k", 0, "number of paths (default routing.defaultK)")
)

func main() {
	// A missing .env is normal; anything else is worth a note.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (config.AppConfig, error) {
	path := *configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	return cfg, nil
}

func run(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) error {
	// ----------------------------------------------------------------------------
	// Initialization

	g, reg, err := loadNetwork(cfg, logger)
	if err != nil {
		return err
	}
	eng, err := routing.NewEngine(g, reg, cfg.RoutingOptions(logger)...)
	if err != nil {
		return err
	}

	switch {
	case *serve:
		return serveHTTP(ctx, cfg, logger, httpapi.NewHandler(g, reg, eng,
			httpapi.WithK(cfg.Routing.DefaultK, cfg.Routing.MaxK),
			httpapi.WithTimeout(cfg.Timeout()),
			httpapi.WithLogger(logger),
		))
	case *interactive:
		return prompt(ctx, cfg, eng, reg, os.Stdin, os.Stdout)
	case *from != "" && *to != "":
		n := *k
		if n == 0 {
			n = cfg.Routing.DefaultK
		}
		return query(ctx, cfg, eng, reg, os.Stdout, *from, *to, n)
	default:
		return errors.New("nothing to do: pass -from and -to, -i, or -serve")
	}
}

// loadNetwork decodes the dataset and builds registry and graph.
func loadNetwork(cfg config.AppConfig, logger *slog.Logger) (*core.Graph, *registry.Registry, error) {
	f, err := os.Open(cfg.Data.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := records.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", cfg.Data.Path, err)
	}
	reg, err := registry.BuildRegistry(ds.Stations)
	if err != nil {
		return nil, nil, err
	}
	g, warnings, err := builder.Build(reg, records.GroupSegments(ds.Segments), ds.TravelTimes, cfg.BuilderOptions(logger)...)
	if err != nil {
		return nil, nil, err
	}
	warnings.LogAll(logger)

	return g, reg, nil
}

// query answers one request and prints it.
func query(ctx context.Context, cfg config.AppConfig, eng *routing.Engine, reg *registry.Registry, w io.Writer, origin, dest string, n int) error {
	if t := cfg.Timeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	paths, err := eng.Route(ctx, origin, dest, n)
	switch {
	case errors.Is(err, routing.ErrUnknownStation), errors.Is(err, routing.ErrNoPathFound):
		// Reported, not fatal.
		fmt.Fprintln(w, err)
		return nil
	case err != nil:
		return err
	}
	printPaths(w, reg, origin, dest, paths)

	return nil
}

// prompt reads origin/destination pairs until EOF or "exit".
func prompt(ctx context.Context, cfg config.AppConfig, eng *routing.Engine, reg *registry.Registry, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	ask := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !sc.Scan() {
			return "", false
		}
		s := strings.TrimSpace(sc.Text())
		return s, s != "" && !strings.EqualFold(s, "exit")
	}
	for ctx.Err() == nil {
		origin, ok := ask("Origin: ")
		if !ok {
			break
		}
		dest, ok := ask("Destination: ")
		if !ok {
			break
		}
		if err := query(ctx, cfg, eng, reg, out, origin, dest, cfg.Routing.DefaultK); err != nil {
			return err
		}
	}

	return sc.Err()
}

func serveHTTP(ctx context.Context, cfg config.AppConfig, logger *slog.Logger, h *httpapi.Handler) error {
	wg := sync.WaitGroup{}

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrs := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(serverErrs)

		logger.Info("starting http server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrs <- fmt.Errorf("server error: %w", err)
		}
	}()

	// ----------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrs:
		return fmt.Errorf("received server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down application")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	wg.Wait()
	return nil
}
