package config

import (
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindChar   Kind = "char"
	KindString Kind = "string"
)

type LoggingLevel string

const (
	LoggingLevelDebug LoggingLevel = "debug"
	LoggingLevelInfo  LoggingLevel = "info"
	LoggingLevelWarn  LoggingLevel = "warn"
	LoggingLevelError LoggingLevel = "error"
)

type Config struct {
	Sort    SortConfig    `toml:"sort"`
	Logging LoggingConfig `toml:"logging"`
}

type SortConfig struct {
	Order Order `toml:"order"`
	Kind  Kind  `toml:"kind"`
}

type LoggingConfig struct {
	Level LoggingLevel `toml:"level"`
}

func Default() Config {
	return Config{
		Sort: SortConfig{
			Order: OrderAscending,
			Kind:  KindInt,
		},
		Logging: LoggingConfig{
			Level: LoggingLevelInfo,
		},
	}
}

// Unmarshal reads a TOML file on top of Default, so keys missing from the file
// keep their default values.
func Unmarshal(path string) (Config, error) {
	out := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return out, errors.Wrapf(err, "unable to read %s", path)
	}
	if err := toml.Unmarshal(data, &out); err != nil {
		return out, errors.Wrapf(err, "unable to unmarshal %s", path)
	}

	return out, out.Validate()
}

func (me Config) Validate() error {
	switch me.Sort.Order {
	case OrderAscending, OrderDescending:
	default:
		return errors.Errorf("unknown sort order %q", me.Sort.Order)
	}

	switch me.Sort.Kind {
	case KindInt, KindFloat, KindChar, KindString:
	default:
		return errors.Errorf("unknown value kind %q", me.Sort.Kind)
	}

	if _, ok := me.Logging.Level.slogLevel(); !ok {
		return errors.Errorf("unknown logging level %q", me.Logging.Level)
	}

	return nil
}

func (me LoggingLevel) slogLevel() (slog.Level, bool) {
	switch me {
	case LoggingLevelDebug:
		return slog.LevelDebug, true
	case LoggingLevelInfo:
		return slog.LevelInfo, true
	case LoggingLevelWarn:
		return slog.LevelWarn, true
	case LoggingLevelError:
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// SlogLevel maps the level onto slog, defaulting to info for unknown values.
func (me LoggingLevel) SlogLevel() slog.Level {
	level, _ := me.slogLevel()
	return level
}
