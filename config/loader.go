package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/builder"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/routing"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvConfig = "METROROUTE_CONFIG"
	EnvAddr   = "METROROUTE_ADDR"
	EnvData   = "METROROUTE_DATA"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Default returns the configuration used when no file is given. Loading a
// file starts from these values, so absent keys keep them.
func Default() AppConfig {
	return AppConfig{
		Network: NetworkConfig{
			TransferPenalty: builder.DefaultTransferPenalty,
			ShuntWeight:     builder.DefaultShuntWeight,
			ShuntLine:       builder.DefaultShuntLine,
		},
		Routing: RoutingConfig{
			DefaultK:      3,
			MaxK:          10,
			MaxExpansions: routing.DefaultMaxExpansions,
			TimeoutMS:     5000,
		},
		Server: ServerConfig{Addr: ":8080"},
		Data:   DataConfig{Path: "network.yml"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate checks every struct tag.
func (c AppConfig) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// ApplyEnv overrides the server address and data path from the environment.
func (c *AppConfig) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvData)); v != "" {
		c.Data.Path = v
	}
}

// BuilderOptions translates the network section into builder options.
func (c AppConfig) BuilderOptions(logger *slog.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithTransferPenalty(c.Network.TransferPenalty),
		builder.WithShuntWeight(c.Network.ShuntWeight),
		builder.WithShuntLine(c.Network.ShuntLine),
	}
	for _, p := range c.Network.ManualTransfers {
		opts = append(opts, builder.WithManualTransfer(p.From, p.To))
	}
	for _, p := range c.Network.Shunts {
		opts = append(opts, builder.WithShunt(p.From, p.To))
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}

	return opts
}

// RoutingOptions translates the routing section into engine options.
func (c AppConfig) RoutingOptions(logger *slog.Logger) []routing.Option {
	opts := []routing.Option{
		routing.WithMaxExpansions(c.Routing.MaxExpansions),
		routing.WithMaxHops(c.Routing.MaxHops),
	}
	if c.Routing.Parallelism > 0 {
		opts = append(opts, routing.WithParallelism(c.Routing.Parallelism))
	}
	var avoid []core.EdgeKind
	for _, name := range c.Routing.Avoid {
		if kind, err := core.ParseEdgeKind(name); err == nil {
			avoid = append(avoid, kind)
		}
	}
	if len(avoid) > 0 {
		opts = append(opts, routing.WithAvoid(avoid...))
	}
	if logger != nil {
		opts = append(opts, routing.WithLogger(logger))
	}

	return opts
}

// Timeout is the per-query deadline; zero means none.
func (c AppConfig) Timeout() time.Duration {
	return time.Duration(c.Routing.TimeoutMS) * time.Millisecond
}

// Level maps Log.Level to a slog level.
func (c AppConfig) Level() slog.Level {
	switch c.Log.Level {
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
