package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/navijation/prioheap/config"
	"github.com/navijation/prioheap/util"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "heapsort.toml"

type overrides struct {
	Kind  util.Optional[config.Kind]
	Order util.Optional[config.Order]
	Level util.Optional[config.LoggingLevel]
}

type appSettings struct {
	config config.Config
	logger *slog.Logger
}

func loadSettings(cmd *cli.Command) (out appSettings, _ error) {
	var args overrides
	if cmd.IsSet("kind") {
		args.Kind = util.Some(config.Kind(cmd.String("kind")))
	}
	if cmd.IsSet("desc") {
		order := config.OrderAscending
		if cmd.Bool("desc") {
			order = config.OrderDescending
		}
		args.Order = util.Some(order)
	}
	if cmd.IsSet("log-level") {
		args.Level = util.Some(config.LoggingLevel(cmd.String("log-level")))
	}

	cfg, err := resolveConfig(cmd.String("config"), args)
	if err != nil {
		return out, err
	}

	return appSettings{
		config: cfg,
		logger: newLogger(cfg.Logging.Level.SlogLevel(), uuid.NewString()),
	}, nil
}

// resolveConfig layers flag overrides over the config file, which itself is
// layered over the defaults. An empty path falls back to defaultConfigPath when
// that file exists.
func resolveConfig(path string, args overrides) (config.Config, error) {
	cfg := config.Default()

	if path == "" {
		exists, err := util.FileExists(defaultConfigPath)
		if err != nil {
			return cfg, err
		}
		if exists {
			path = defaultConfigPath
		}
	}

	if path != "" {
		var err error
		if cfg, err = config.Unmarshal(path); err != nil {
			return cfg, err
		}
	}

	cfg.Sort.Kind = args.Kind.Or(cfg.Sort.Kind)
	cfg.Sort.Order = args.Order.Or(cfg.Sort.Order)
	cfg.Logging.Level = args.Level.Or(cfg.Logging.Level)

	return cfg, cfg.Validate()
}

func newLogger(level slog.Level, runID string) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})).With("run_id", runID)
}
